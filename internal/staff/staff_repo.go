package staff

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	// Upsert writes rec under the (novumflow_employee_id, tenant_id) key:
	// update-in-place preserving created_at, else insert. Never duplicates.
	Upsert(ctx context.Context, rec *StaffRecord) error
	// UpsertComplianceEntry writes entry under its novumflow_record_id key.
	UpsertComplianceEntry(ctx context.Context, entry *ComplianceEntry) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, rec *StaffRecord) error {
	var existing []StaffRecord
	err := r.db.WithContext(ctx).
		Select("id, created_at").
		Where("novumflow_employee_id = ? AND tenant_id = ?", rec.NovumflowEmployeeID, rec.TenantID).
		Limit(1).
		Find(&existing).Error
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	rec.UpdatedAt = now

	if len(existing) > 0 {
		rec.ID = existing[0].ID
		rec.CreatedAt = existing[0].CreatedAt
		return r.db.WithContext(ctx).Save(rec).Error
	}

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = now
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) UpsertComplianceEntry(ctx context.Context, entry *ComplianceEntry) error {
	var existing []ComplianceEntry
	err := r.db.WithContext(ctx).
		Select("id, created_at").
		Where("novumflow_record_id = ?", entry.NovumflowRecordID).
		Limit(1).
		Find(&existing).Error
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	entry.UpdatedAt = now

	if len(existing) > 0 {
		entry.ID = existing[0].ID
		entry.CreatedAt = existing[0].CreatedAt
		return r.db.WithContext(ctx).Save(entry).Error
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = now
	return r.db.WithContext(ctx).Create(entry).Error
}
