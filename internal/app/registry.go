package app

import (
	"database/sql"
	"path/filepath"

	"careflow-sync/internal/compliance"
	"careflow-sync/internal/employee"
	"careflow-sync/internal/messaging/kafka"
	"careflow-sync/internal/rbac"
	"careflow-sync/internal/rbac/infra"
	"careflow-sync/internal/staff"
	"careflow-sync/internal/sync"
	"careflow-sync/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	tenantRepo := tenant.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	complianceRepo := compliance.NewRepository(gormDB)
	logRepo := sync.NewLogRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	tenantResolver := tenant.NewResolver(tenantRepo, rdb)
	staffStore := staff.NewStore(gormDB)
	syncService := sync.NewService(
		db,
		employeeRepo,
		complianceRepo,
		staffStore,
		tenantResolver,
		logRepo,
		rbacService,
		outboxRepo,
	)

	// --- Handlers ---
	syncHandler := sync.NewHandler(syncService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		sync.RegisterRoutes(api, syncHandler, zap.L())
	}

	return nil
}
