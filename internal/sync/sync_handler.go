package sync

import (
	"net/http"

	"careflow-sync/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("sync.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sync.handler")
	}
	return &Handler{service: service, logger: l}
}

// writeError emits the flat error shape the HR platform's sync client
// expects, not the generic API envelope.
func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("sync request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	c.JSON(httpErr.Status, gin.H{
		"success": false,
		"code":    httpErr.Code,
		"error":   httpErr.Message,
	})
}

// Sync runs one batch. 200 when every employee processed cleanly, 207 when
// some employees failed but the batch itself completed.
func (h *Handler) Sync(c *gin.Context) {
	var req SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("sync validation failed", zap.Error(err))
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	h.logger.Debug("http sync request",
		zap.String("tenant_id", req.TenantID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("action", req.Action),
	)

	resp, err := h.service.Run(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	status := http.StatusOK
	if len(resp.Errors) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, resp)
}
