package sync

import (
	"encoding/json"
	"strings"

	"careflow-sync/internal/compliance"
	"careflow-sync/internal/employee"
	"careflow-sync/internal/staff"
)

// RoleMapper translates an HR position title into a CareFlow role. The
// default is a keyword heuristic; deployments with their own taxonomy can
// inject a replacement.
type RoleMapper func(position string) string

func DefaultRoleMapper(position string) string {
	p := strings.ToLower(position)
	switch {
	case strings.Contains(p, "manager"), strings.Contains(p, "director"):
		return "Admin"
	case strings.Contains(p, "nurse"), strings.Contains(p, "carer"), strings.Contains(p, "support"):
		return "Carer"
	default:
		return "Carer"
	}
}

var complianceTypeLabels = map[string]string{
	"right_to_work":             "Right to Work",
	"dbs":                       "DBS Check",
	"dbs_check":                 "DBS Check",
	"training":                  "Training",
	"certificate":               "Certificate",
	"id_verification":           "ID Verification",
	"qualification":             "Qualification",
	"professional_registration": "Professional Registration",
}

// MapComplianceType returns the CareFlow display label for a source document
// type, passing unknown types through unchanged. Matching ignores case;
// source systems are inconsistent about it.
func MapComplianceType(documentType string) string {
	if label, ok := complianceTypeLabels[strings.ToLower(documentType)]; ok {
		return label
	}
	return documentType
}

// BuildStaffRecord projects an employee plus the two evaluations into the
// downstream staff row. issues is the concatenated evaluator issue list for
// this employee; it is stored as NULL when empty so consumers can tell "no
// issues recorded" from "evaluated clean with an empty list".
func BuildStaffRecord(empl *employee.Employee, rtw compliance.RTWEvaluation, dbs compliance.DBSEvaluation, issues []string, roleOf RoleMapper) *staff.StaffRecord {
	if roleOf == nil {
		roleOf = DefaultRoleMapper
	}

	blocked := rtw.Blocked() || dbs.Blocked()

	status := staff.StatusInactive
	if empl.Status == "active" {
		status = staff.StatusActive
	}
	if blocked {
		status = staff.StatusBlocked
	}

	rec := &staff.StaffRecord{
		TenantID:              empl.TenantID,
		NovumflowEmployeeID:   empl.ID,
		FullName:              empl.FullName(),
		Email:                 empl.Email,
		Phone:                 empl.Phone,
		Role:                  roleOf(empl.Position),
		Status:                status,
		Department:            empl.Department,
		StartDate:             empl.HireDate,
		RTWStatus:             rtw.Status.Label(),
		RTWExpiry:             rtw.Expiry,
		RTWVerificationMethod: rtw.VerificationMethod,
		DBSStatus:             dbs.Status.Label(),
		DBSExpiry:             dbs.Expiry,
		ComplianceBlocked:     blocked,
	}

	if len(issues) > 0 {
		if data, err := json.Marshal(issues); err == nil {
			rec.ComplianceIssues = data
		}
	}

	return rec
}

// NewRTWEntry mirrors one source right-to-work check into the target store,
// keyed by the source row id.
func NewRTWEntry(check *compliance.RightToWorkCheck, rec *staff.StaffRecord) *staff.ComplianceEntry {
	issueDate := check.CheckDate
	return &staff.ComplianceEntry{
		StaffID:            rec.ID,
		TenantID:           rec.TenantID,
		Type:               "Right to Work",
		Status:             check.Status,
		IssueDate:          &issueDate,
		ExpiryDate:         check.NextCheckDate,
		DocumentURL:        check.DocumentURL,
		DocumentType:       check.DocumentType,
		VerificationMethod: check.VerificationMethod,
		ShareCodeVerified:  check.ShareCodeVerified,
		RequiresFollowup:   check.RequiresFollowup,
		NovumflowRecordID:  check.ID,
	}
}

// NewComplianceEntry mirrors one generic compliance record.
func NewComplianceEntry(record *compliance.ComplianceRecord, rec *staff.StaffRecord) *staff.ComplianceEntry {
	return &staff.ComplianceEntry{
		StaffID:           rec.ID,
		TenantID:          rec.TenantID,
		Type:              MapComplianceType(record.DocumentType),
		Status:            record.Status,
		IssueDate:         record.IssueDate,
		ExpiryDate:        record.ExpiryDate,
		DocumentURL:       record.DocumentURL,
		VerifiedBy:        record.VerifiedBy,
		NovumflowRecordID: record.ID,
	}
}
