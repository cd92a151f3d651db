package sync

// Actions a caller may request. sync and re-sync run the full
// reconciliation (the idempotent upsert makes them equivalent); verify runs
// the evaluators and mapper without writing to the target store.
const (
	ActionSync   = "sync"
	ActionVerify = "verify"
	ActionReSync = "re-sync"
)

// Compliance classifications surfaced per employee.
const (
	ComplianceCompliant    = "compliant"
	ComplianceNonCompliant = "non_compliant"
	ComplianceBlocked      = "blocked"
	CompliancePending      = "pending"
)

type SyncRequest struct {
	EmployeeID        string `json:"employee_id" binding:"omitempty,uuid"`
	TenantID          string `json:"tenant_id" binding:"required,uuid"`
	Action            string `json:"action" binding:"required,oneof=sync verify re-sync"`
	IncludeCompliance *bool  `json:"include_compliance"`
}

// WithCompliance defaults secondary record mirroring to on.
func (r SyncRequest) WithCompliance() bool {
	return r.IncludeCompliance == nil || *r.IncludeCompliance
}

type SyncResult struct {
	EmployeeID       string   `json:"employee_id"`
	EmployeeName     string   `json:"employee_name"`
	Synced           bool     `json:"synced"`
	ComplianceStatus string   `json:"compliance_status"`
	Issues           []string `json:"issues"`
}

type BatchSyncResponse struct {
	Success        bool         `json:"success"`
	SyncedCount    int          `json:"synced_count"`
	BlockedCount   int          `json:"blocked_count"`
	TotalProcessed int          `json:"total_processed"`
	Results        []SyncResult `json:"results"`
	Errors         []string     `json:"errors,omitempty"`
	Message        string       `json:"message"`
}
