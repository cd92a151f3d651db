package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"careflow-sync/internal/events"
	"careflow-sync/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func pendingEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     uuid.NewString(),
		AggregateType: "sync_log",
		AggregateID:   uuid.NewString(),
		EventType:     events.EventTypeSyncCompleted,
		Topic:         events.SyncLifecycleTopic,
		Payload:       []byte(`{"synced_count":1}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	event := pendingEvent()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sync_outbox_events")).
		WithArgs(
			event.ID, event.RequestID, event.AggregateType,
			event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalidEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	event := pendingEvent()
	event.Topic = ""

	assert.Error(t, repo.Create(context.Background(), event))
	// Validation fails before any statement reaches the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	event := pendingEvent()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "coalesce",
	}).AddRow(
		event.ID, event.AggregateType, event.AggregateID, event.EventType,
		event.Topic, event.Payload, event.Status, 0, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sync_outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)
	assert.Equal(t, event.Topic, events[0].Topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	id := uuid.NewString()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sync_outbox_events")).
		WithArgs(id, kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailedSchedulesRetry(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	id := uuid.NewString()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sync_outbox_events")).
		WithArgs(id, kafka.OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), id, "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
