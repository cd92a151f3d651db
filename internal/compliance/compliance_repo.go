package compliance

import (
	"context"

	"careflow-sync/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=compliance_repo.go -destination=mock/compliance_repo_mock.go -package=mock
type Repository interface {
	// LatestRTWByEmployee returns the most recent check by check date, or
	// nil when the employee has none.
	LatestRTWByEmployee(ctx context.Context, employeeID string) (*RightToWorkCheck, error)
	// LatestDBSByEmployee returns the most recent check by application
	// date, or nil when the employee has none.
	LatestDBSByEmployee(ctx context.Context, employeeID string) (*DBSCheck, error)
	ListRTWByEmployee(ctx context.Context, employeeID string) ([]RightToWorkCheck, error)
	ListRecordsByEmployee(ctx context.Context, tenantID, employeeID string) ([]ComplianceRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) LatestRTWByEmployee(ctx context.Context, employeeID string) (*RightToWorkCheck, error) {
	var checks []RightToWorkCheck
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("check_date DESC").
		Limit(1).
		Find(&checks).Error
	if err != nil {
		return nil, err
	}
	if len(checks) == 0 {
		return nil, nil
	}
	return &checks[0], nil
}

func (r *repository) LatestDBSByEmployee(ctx context.Context, employeeID string) (*DBSCheck, error) {
	var checks []DBSCheck
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("application_date DESC").
		Limit(1).
		Find(&checks).Error
	if err != nil {
		return nil, err
	}
	if len(checks) == 0 {
		return nil, nil
	}
	return &checks[0], nil
}

func (r *repository) ListRTWByEmployee(ctx context.Context, employeeID string) ([]RightToWorkCheck, error) {
	var checks []RightToWorkCheck
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("check_date DESC").
		Find(&checks).Error
	return checks, err
}

func (r *repository) ListRecordsByEmployee(ctx context.Context, tenantID, employeeID string) ([]ComplianceRecord, error) {
	var records []ComplianceRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("employee_id = ?", employeeID).
		Find(&records).Error
	return records, err
}
