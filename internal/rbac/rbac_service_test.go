package rbac_test

import (
	"testing"

	"careflow-sync/internal/rbac"
	"careflow-sync/internal/rbac/infra"
	rbacMock "careflow-sync/internal/rbac/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupEnforcer(t *testing.T) (*rbacMock.MockRepository, rbac.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := rbacMock.NewMockRepository(ctrl)

	enforcer, err := infra.NewEnforcer("infra/model.conf")
	assert.NoError(t, err)

	return repo, rbac.NewService(repo, enforcer)
}

func TestRBACService_Enforce(t *testing.T) {
	tenantID := uuid.NewString()
	owner := uuid.NewString()
	admin := uuid.NewString()
	carer := uuid.NewString()

	memberships := []rbac.MembershipRoleRow{
		{UserID: owner, Role: "owner"},
		{UserID: admin, Role: "admin"},
		{UserID: carer, Role: "carer"},
	}

	t.Run("owner may execute sync", func(t *testing.T) {
		repo, svc := setupEnforcer(t)
		repo.EXPECT().GetMembershipRoles(tenantID).Return(memberships, nil)

		allowed, err := svc.Enforce(rbac.EnforceRequest{
			UserID: owner, TenantID: tenantID, Resource: "sync", Action: "execute",
		})
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("admin may execute sync", func(t *testing.T) {
		repo, svc := setupEnforcer(t)
		repo.EXPECT().GetMembershipRoles(tenantID).Return(memberships, nil)

		allowed, err := svc.Enforce(rbac.EnforceRequest{
			UserID: admin, TenantID: tenantID, Resource: "sync", Action: "execute",
		})
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("carer denied", func(t *testing.T) {
		repo, svc := setupEnforcer(t)
		repo.EXPECT().GetMembershipRoles(tenantID).Return(memberships, nil)

		allowed, err := svc.Enforce(rbac.EnforceRequest{
			UserID: carer, TenantID: tenantID, Resource: "sync", Action: "execute",
		})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("membership in another tenant does not carry over", func(t *testing.T) {
		repo, svc := setupEnforcer(t)
		otherTenant := uuid.NewString()
		repo.EXPECT().GetMembershipRoles(otherTenant).Return(nil, nil)

		allowed, err := svc.Enforce(rbac.EnforceRequest{
			UserID: owner, TenantID: otherTenant, Resource: "sync", Action: "execute",
		})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
