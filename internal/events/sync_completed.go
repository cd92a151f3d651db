package events

import (
	"encoding/json"
	"time"

	"careflow-sync/internal/messaging/kafka"

	"github.com/google/uuid"
)

const (
	SyncLifecycleTopic = "careflow.sync.lifecycle.v1"

	EventTypeSyncCompleted = "sync_completed"
)

// SyncCompletedEvent is published after a batch finishes, whatever the
// per-employee outcomes were. Consumers use it to drive notifications and
// compliance dashboards.
type SyncCompletedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	TenantID       string    `json:"tenant_id"`
	SyncLogID      string    `json:"sync_log_id"`
	Action         string    `json:"action"`
	SyncedCount    int       `json:"synced_count"`
	BlockedCount   int       `json:"blocked_count"`
	TotalProcessed int       `json:"total_processed"`
	ErrorCount     int       `json:"error_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// NewSyncCompletedOutbox wraps the event as an outbox row keyed by the sync
// log id.
func NewSyncCompletedOutbox(evt SyncCompletedEvent) (kafka.OutboxEvent, error) {
	evt.EventType = EventTypeSyncCompleted

	payload, err := json.Marshal(evt)
	if err != nil {
		return kafka.OutboxEvent{}, err
	}

	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     evt.RequestID,
		AggregateType: "sync_log",
		AggregateID:   evt.SyncLogID,
		EventType:     EventTypeSyncCompleted,
		Topic:         SyncLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}, nil
}
