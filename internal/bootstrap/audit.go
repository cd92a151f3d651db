package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational lifecycle events (startup, shutdown) that
// belong in the audit trail rather than the debug log.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
