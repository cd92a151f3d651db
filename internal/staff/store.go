package staff

import (
	"context"
	"sync"

	"careflow-sync/internal/shared/connection"
	"careflow-sync/internal/tenant"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock

// Store hands out a target-store repository for a tenant. Tenants without a
// remote CareFlow endpoint share the local database; tenants with one get a
// repository bound to a cached remote connection.
type Store interface {
	ForTenant(ctx context.Context, cfg tenant.Config) (Repository, error)
}

type store struct {
	local   *gorm.DB
	mu      sync.Mutex
	remotes map[string]*gorm.DB
	logger  *zap.Logger
}

func NewStore(local *gorm.DB, logger ...*zap.Logger) Store {
	l := zap.L().Named("staff.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.store")
	}
	return &store{
		local:   local,
		remotes: make(map[string]*gorm.DB),
		logger:  l,
	}
}

func (s *store) ForTenant(ctx context.Context, cfg tenant.Config) (Repository, error) {
	if cfg.RemoteDSN == "" {
		return NewRepository(s.local), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if db, ok := s.remotes[cfg.RemoteDSN]; ok {
		return NewRepository(db), nil
	}

	s.logger.Info("opening remote careflow store",
		zap.String("tenant_id", cfg.ID),
		zap.String("region", cfg.Region),
	)

	db, err := connection.OpenGORMWithRetry(cfg.RemoteDSN, 3)
	if err != nil {
		return nil, err
	}

	s.remotes[cfg.RemoteDSN] = db
	return NewRepository(db), nil
}
