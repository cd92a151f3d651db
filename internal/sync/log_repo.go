package sync

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=log_repo.go -destination=mock/log_repo_mock.go -package=mock
type LogRepository interface {
	// WithTx returns a repository whose statements run on tx, so the log
	// transition can commit atomically with other rows in the same database.
	WithTx(tx *sql.Tx) LogRepository
	Create(ctx context.Context, entry *SyncLog) error
	Finalize(ctx context.Context, id, status, lastError string) error
}

type logRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) WithTx(tx *sql.Tx) LogRepository {
	// The cloned session gets its own statement, so swapping the
	// connection pool never leaks the transaction into the parent.
	session := r.db.Session(&gorm.Session{NewDB: true, Context: r.db.Statement.Context})
	session.Statement.ConnPool = tx
	return &logRepository{db: session}
}

func (r *logRepository) Create(ctx context.Context, entry *SyncLog) error {
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *logRepository) Finalize(ctx context.Context, id, status, lastError string) error {
	return r.db.WithContext(ctx).
		Model(&SyncLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"last_error": lastError,
			"updated_at": time.Now().UTC(),
		}).Error
}
