package compliance

import (
	"time"

	"github.com/google/uuid"
)

// RTW document types with special handling.
const (
	DocumentTypeBRP           = "biometric_residence_permit"
	DocumentTypePassportNonUK = "passport_non_uk"
)

// RightToWorkCheck is one immigration verification event. Multiple rows may
// exist per employee; only the most recent by check date gates the sync.
type RightToWorkCheck struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID         uuid.UUID `gorm:"type:uuid;index"`
	TenantID           uuid.UUID `gorm:"type:uuid;index"`
	DocumentType       string
	CheckDate          time.Time
	NextCheckDate      *time.Time
	VerificationMethod string
	Status             string
	ShareCodeVerified  bool
	RequiresFollowup   bool
	DocumentURL        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (RightToWorkCheck) TableName() string {
	return "right_to_work_checks"
}

// DBSCheck is one background/criminal-record vetting event. Most recent by
// application date is authoritative.
type DBSCheck struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID        uuid.UUID `gorm:"type:uuid;index"`
	TenantID          uuid.UUID `gorm:"type:uuid;index"`
	ApplicationDate   time.Time
	ExpiryDate        *time.Time
	Status            string
	CertificateNumber string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (DBSCheck) TableName() string {
	return "dbs_checks"
}

// ComplianceRecord is a generic compliance document (training, attestations)
// not covered by the two specialized checks. Mirrored downstream as-is.
type ComplianceRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;index"`
	TenantID     uuid.UUID `gorm:"type:uuid;index"`
	DocumentType string
	Status       string
	IssueDate    *time.Time
	ExpiryDate   *time.Time
	DocumentURL  string
	VerifiedBy   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ComplianceRecord) TableName() string {
	return "compliance_records"
}
