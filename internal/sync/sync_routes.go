package sync

import (
	"careflow-sync/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	routes := r.Group("/sync-to-careflow")
	routes.Use(middleware.Auth())
	routes.Use(middleware.ContextLogger(logger))
	{
		routes.POST("",
			middleware.RateLimitByCaller(1, 3),
			handler.Sync,
		)
	}
}
