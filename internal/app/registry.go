package app

import (
	"database/sql"

	"github.com/kidaholy/human-resource-sub000/internal/audit"
	"github.com/kidaholy/human-resource-sub000/internal/config"
	"github.com/kidaholy/human-resource-sub000/internal/directory"
	"github.com/kidaholy/human-resource-sub000/internal/leave"
	"github.com/kidaholy/human-resource-sub000/internal/messaging/kafka"
	"github.com/kidaholy/human-resource-sub000/internal/middleware"
	"github.com/kidaholy/human-resource-sub000/internal/rbac"
	"github.com/kidaholy/human-resource-sub000/internal/rbac/infra"
	"github.com/kidaholy/human-resource-sub000/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	directoryRepo := directory.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	auditRepo := audit.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.Auth.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	leaveService := leave.NewService(leave.ServiceDeps{
		DB:         db,
		Repo:       leaveRepo,
		Scope:      leave.NewScopeResolver(directoryRepo),
		Counter:    counterRepo,
		Outbox:     outboxRepo,
		Allotments: leave.AllotmentsFromConfig(cfg.Leave),
	}, logger)
	auditService := audit.NewService(auditRepo, logger)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService, logger)
	auditHandler := audit.NewHandler(auditService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(20, 40))
	{
		leave.RegisterRoutes(api, leaveHandler, leave.RouteDeps{
			JWTSecret: cfg.Auth.JWTSecret,
			Enforcer:  rbacService,
			Redis:     rdb,
			Logger:    logger,
		})
		audit.RegisterRoutes(api, auditHandler, rbacService, cfg.Auth.JWTSecret, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, cfg.Auth.JWTSecret)
	}

	return nil
}
