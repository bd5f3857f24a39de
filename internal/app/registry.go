package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"go-workhub/internal/employee"
	"go-workhub/internal/messaging/kafka"
	"go-workhub/internal/project"
	"go-workhub/internal/rbac"
	"go-workhub/internal/rbac/infra"
	"go-workhub/internal/shared/avatar"
	"go-workhub/internal/social"
	"go-workhub/internal/user"

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
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	socialRepo := social.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Shared infrastructure ---
	avatarRoot := os.Getenv("AVATAR_DIR")
	avatarService := avatar.NewService(avatar.NewDiskStore(avatarRoot))

	// --- Services ---
	userService := user.NewService(userRepo, rdb)
	employeeService := employee.NewService(
		db, employeeRepo, outboxRepo, avatarService, projectRepo, userService, rbacService,
	)
	socialService := social.NewService(db, socialRepo, avatarService)
	projectService := project.NewService(projectRepo)

	// --- Handlers ---
	userHandler := user.NewHandler(userService)
	employeeHandler := employee.NewHandler(employeeService)
	socialHandler := social.NewHandler(socialService)
	projectHandler := project.NewHandler(projectService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		user.RegisterRoutes(api, userHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		social.RegisterRoutes(api, socialHandler, logger)
		project.RegisterRoutes(api, projectHandler, rbacService, logger)
	}

	return nil
}
