package sync

import (
	"time"

	"github.com/google/uuid"
)

const (
	LogStatusPending = "pending"
	LogStatusSuccess = "success"
	LogStatusFailed  = "failed"
)

// SyncLog is the audit row for one batch invocation. Created in pending
// state before any employee is processed and finalized exactly once when
// the batch ends; never deleted by this service.
type SyncLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID  `gorm:"type:uuid;index"`
	EmployeeID *uuid.UUID `gorm:"type:uuid"`
	Action     string
	Status     string
	LastError  string
	Metadata   []byte `gorm:"type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SyncLog) TableName() string {
	return "careflow_sync_logs"
}

type LogMetadata struct {
	Region            string `json:"region,omitempty"`
	IncludeCompliance bool   `json:"include_compliance"`
	RequestID         string `json:"request_id,omitempty"`
}
