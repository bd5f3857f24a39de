package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetAll,
		)

		employees.POST("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.Create,
		)

		employees.GET("/export",
			middleware.RateLimitByUser(1, 2),
			middleware.RBACAuthorize(rbacService, "employee", "export"),
			handler.Export,
		)

		employees.GET("/profile",
			middleware.RateLimitByUser(5, 20),
			handler.Profile,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.Show,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "employee", "update"),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "employee", "delete"),
			handler.Delete,
		)

		employees.POST("/assign-role",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "employee", "assign-role"),
			handler.AssignRole,
		)
	}
}
