package tenant

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=tenant_repo.go -destination=mock/tenant_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Tenant, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Tenant, error) {
	var t Tenant
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}
