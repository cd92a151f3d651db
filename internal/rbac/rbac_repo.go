package rbac

import "gorm.io/gorm"

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetMembershipRoles(tenantID string) ([]MembershipRoleRow, error)
}

type MembershipRoleRow struct {
	UserID string
	Role   string
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetMembershipRoles(tenantID string) ([]MembershipRoleRow, error) {
	var result []MembershipRoleRow

	err := r.db.
		Table("user_tenant_memberships").
		Select("user_id, role").
		Where("tenant_id = ?", tenantID).
		Where("is_active = ?", true).
		Scan(&result).Error

	return result, err
}
