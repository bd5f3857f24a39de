package social

import (
	"go-workhub/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	auth := r.Group("/auth")
	auth.Use(middleware.ContextLogger(logger))
	{
		// Unauthenticated by nature; throttled by source address instead.
		auth.POST("/social/:provider",
			middleware.RateLimitByIP(2, 5),
			handler.Callback,
		)
	}
}
