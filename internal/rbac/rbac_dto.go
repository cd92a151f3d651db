package rbac

type EnforceRequest struct {
	UserID   string
	TenantID string
	Resource string
	Action   string
}
