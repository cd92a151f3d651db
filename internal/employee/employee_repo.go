package employee

import (
	"context"

	"careflow-sync/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindActiveByTenant(ctx context.Context, tenantID string) ([]Employee, error)
	FindByIDAndTenant(ctx context.Context, tenantID, id string) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActiveByTenant(ctx context.Context, tenantID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("status = ?", "active").
		Order("id").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByIDAndTenant(ctx context.Context, tenantID, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}
