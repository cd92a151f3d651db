package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	tenanterrors "careflow-sync/internal/tenant/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const ConfigKeyPrefix = "tenant:config:"

const configCacheTTL = 5 * time.Minute

func GetConfigKey(tenantID string) string {
	return ConfigKeyPrefix + tenantID
}

//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock
type Resolver interface {
	Resolve(ctx context.Context, tenantID string) (Config, error)
}

type resolver struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewResolver(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("tenant.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tenant.resolver")
	}
	return &resolver{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Resolve loads the tenant sync configuration, read-through cached in redis.
// Concurrent batch invocations for the same tenant collapse via singleflight.
func (r *resolver) Resolve(ctx context.Context, tenantID string) (Config, error) {
	cacheKey := GetConfigKey(tenantID)

	if r.rdb != nil {
		if cached, err := r.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cfg Config
			if json.Unmarshal([]byte(cached), &cfg) == nil {
				return cfg, nil
			}
		}
	}

	v, err, _ := r.sf.Do(cacheKey, func() (interface{}, error) {
		t, err := r.repo.FindByID(ctx, tenantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Config{}, tenanterrors.ErrTenantNotFound
			}
			return Config{}, err
		}

		settings, err := t.ParseSettings()
		if err != nil {
			r.logger.Warn("tenant settings unparseable",
				zap.String("tenant_id", tenantID),
				zap.Error(err),
			)
			return Config{}, tenanterrors.ErrInvalidTenantSettings
		}

		cfg := Config{
			ID:              t.ID.String(),
			Name:            t.Name,
			CareFlowEnabled: settings.CareFlowEnabled == nil || *settings.CareFlowEnabled,
			Region:          settings.CareFlowRegion,
			RemoteDSN:       settings.CareFlowDSN,
		}

		if r.rdb != nil {
			if jsonData, err := json.Marshal(cfg); err == nil {
				r.rdb.Set(ctx, cacheKey, jsonData, configCacheTTL)
			}
		}

		return cfg, nil
	})

	if err != nil {
		return Config{}, err
	}

	return v.(Config), nil
}
