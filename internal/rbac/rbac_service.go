package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// Roles whose tenant membership may trigger a sync. Everyone else is denied.
var syncRoles = []string{"owner", "admin"}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// loadTenantPolicyUnlocked rebuilds the enforcer policy for one tenant:
// grouping from active membership rows, permissions from the fixed
// owner/admin grant. Caller must hold s.mu.
func (s *service) loadTenantPolicyUnlocked(tenantID string) error {
	s.enforcer.ClearPolicy()

	memberships, err := s.repo.GetMembershipRoles(tenantID)
	if err != nil {
		return err
	}

	for _, m := range memberships {
		if _, err := s.enforcer.AddGroupingPolicy(m.UserID, m.Role, tenantID); err != nil {
			return err
		}
	}

	for _, role := range syncRoles {
		if _, err := s.enforcer.AddPolicy(role, tenantID, "sync", "execute"); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadTenantPolicyUnlocked(req.TenantID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(
		req.UserID,
		req.TenantID,
		req.Resource,
		req.Action,
	)
	if err != nil {
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("tenant_id", req.TenantID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}
