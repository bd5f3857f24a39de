package social

import (
	"net/http"

	"go-workhub/internal/shared/apperror"
	"go-workhub/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("social.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("social.handler")
	}
	return &Handler{service: service, logger: l}
}

// Callback receives the normalised provider profile and returns the local
// user, creating it on first login.
func (h *Handler) Callback(c *gin.Context) {
	provider := c.Param("provider")

	var profile ExternalProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resolved, err := h.service.ResolveOrCreate(c.Request.Context(), provider, profile)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("social callback failed",
			zap.String("provider", provider),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	status := http.StatusOK
	if resolved.Created {
		status = http.StatusCreated
	}
	response.Success(c, status, resolved, nil)
}
