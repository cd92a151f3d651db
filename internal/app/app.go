package app

import (
	"os"

	"careflow-sync/internal/middleware"
	"careflow-sync/internal/shared/connection"
	"careflow-sync/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and registers the sync API on router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, 200, gin.H{"status": "ok"})
	})

	return registerModules(router, sqlDB, gormDB, redisClient)
}
