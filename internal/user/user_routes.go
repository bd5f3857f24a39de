package user

import (
	"go-workhub/internal/middleware"
	"go-workhub/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("/directory",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.Directory,
		)

		users.GET("/admins",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.Admins,
		)

		users.GET("/clients",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.Clients,
		)
	}
}
