package project

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
		employees.GET("/:id/tasks",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.EmployeeTasks,
		)

		employees.GET("/:id/time-logs",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.EmployeeTimeLogs,
		)
	}

	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	projects.Use(middleware.ContextLogger(logger))
	{
		projects.POST("/:id/admin",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "project", "assign-admin"),
			handler.AssignAdmin,
		)
	}
}
