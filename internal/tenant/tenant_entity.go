package tenant

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Settings  []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Settings is the subset of the tenant settings document this service reads.
// CareFlow sync is enabled unless the tenant explicitly disables it.
type Settings struct {
	CareFlowEnabled *bool  `json:"careflow_enabled,omitempty"`
	CareFlowRegion  string `json:"careflow_region,omitempty"`
	CareFlowDSN     string `json:"careflow_dsn,omitempty"`
}

func (t *Tenant) ParseSettings() (Settings, error) {
	var s Settings
	if len(t.Settings) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(t.Settings, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Membership links a platform user to a tenant with a role. The sync
// service only reads it for the owner/admin authorization gate.
type Membership struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	TenantID uuid.UUID `gorm:"type:uuid;index"`
	Role     string
	IsActive bool
}

func (Membership) TableName() string {
	return "user_tenant_memberships"
}

// Config is the resolved, cacheable view of a tenant the orchestrator works
// with. RemoteDSN empty means the local store serves as the sync target.
type Config struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CareFlowEnabled bool   `json:"careflow_enabled"`
	Region          string `json:"region,omitempty"`
	RemoteDSN       string `json:"remote_dsn,omitempty"`
}
