package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff activation states in the downstream store.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusBlocked  = "Blocked"
)

// StaffRecord is the CareFlow-side projection of an HR employee plus the
// derived compliance fields. The (novumflow_employee_id, tenant_id) pair is
// the idempotency key for upserts.
type StaffRecord struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID              uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_staff_employee_tenant"`
	NovumflowEmployeeID   uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_staff_employee_tenant"`
	FullName              string
	Email                 string
	Phone                 string
	Role                  string
	Status                string
	Department            string
	StartDate             time.Time
	RTWStatus             string
	RTWExpiry             *time.Time
	RTWVerificationMethod string
	DBSStatus             string
	DBSExpiry             *time.Time
	ComplianceBlocked     bool
	// NULL when no issues were recorded; consumers distinguish that from
	// an empty list.
	ComplianceIssues []byte `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (StaffRecord) TableName() string {
	return "careflow_staff"
}

// ComplianceEntry mirrors one source RTW or compliance row into the target
// store, keyed by the source record id.
type ComplianceEntry struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID            uuid.UUID `gorm:"type:uuid;index"`
	TenantID           uuid.UUID `gorm:"type:uuid;index"`
	Type               string
	Status             string
	IssueDate          *time.Time
	ExpiryDate         *time.Time
	DocumentURL        string
	VerifiedBy         string
	DocumentType       string
	VerificationMethod string
	ShareCodeVerified  bool
	RequiresFollowup   bool
	NovumflowRecordID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (ComplianceEntry) TableName() string {
	return "careflow_compliance"
}
