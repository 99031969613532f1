package leave

import (
	"github.com/kidaholy/human-resource-sub000/internal/middleware"
	"github.com/kidaholy/human-resource-sub000/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RouteDeps struct {
	JWTSecret string
	Enforcer  middleware.RBACEnforcer
	Redis     redis.Cmdable
	Logger    *zap.Logger
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, deps RouteDeps) {
	leaves := r.Group("/leave")
	leaves.Use(middleware.AuthMiddleware(deps.JWTSecret))
	leaves.Use(middleware.ContextLogger(deps.Logger))
	leaves.Use(middleware.ExtractActor())

	authorize := func(resource, action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(deps.Enforcer, resource, action)
	}

	create := []gin.HandlerFunc{
		middleware.RateLimitByUser(0.5, 3),
		authorize(rbac.ResourceLeave, rbac.ActionCreate),
	}
	if deps.Redis != nil {
		create = append(create, middleware.Idempotency(deps.Redis, deps.Logger))
	}
	create = append(create, handler.Create)

	{
		leaves.POST("/request", create...)
		leaves.GET("/history",
			middleware.RateLimitByUser(3, 10),
			authorize(rbac.ResourceLeave, rbac.ActionRead),
			handler.GetHistory,
		)
		leaves.GET("/balance",
			middleware.RateLimitByUser(3, 10),
			authorize(rbac.ResourceLeave, rbac.ActionRead),
			handler.GetBalance,
		)

		leaves.GET("/department-requests",
			middleware.RateLimitByUser(3, 10),
			authorize(rbac.ResourceLeaveDepartment, rbac.ActionRead),
			handler.GetDepartmentRequests,
		)
		leaves.GET("/department-employees-history",
			middleware.RateLimitByUser(3, 10),
			authorize(rbac.ResourceLeaveDepartment, rbac.ActionRead),
			handler.GetDepartmentHistory,
		)
		leaves.GET("/department-stats",
			middleware.RateLimitByUser(3, 10),
			authorize(rbac.ResourceLeaveDepartment, rbac.ActionRead),
			handler.GetDepartmentStats,
		)
		leaves.PUT("/department-head/:id",
			middleware.RateLimitByUser(1, 5),
			authorize(rbac.ResourceLeaveDepartment, rbac.ActionDecide),
			handler.DecideAsDepartmentHead,
		)

		leaves.GET("/all",
			middleware.RateLimitByUser(3, 10),
			authorize(rbac.ResourceLeaveAdmin, rbac.ActionRead),
			handler.GetAll,
		)
		leaves.GET("/admin-pending",
			middleware.RateLimitByUser(3, 10),
			authorize(rbac.ResourceLeaveAdmin, rbac.ActionRead),
			handler.GetAdminPending,
		)
		leaves.GET("/stats",
			middleware.RateLimitByUser(3, 10),
			authorize(rbac.ResourceLeaveAdmin, rbac.ActionRead),
			handler.GetGlobalStats,
		)
		leaves.PUT("/admin/:id",
			middleware.RateLimitByUser(1, 5),
			authorize(rbac.ResourceLeaveAdmin, rbac.ActionDecide),
			handler.DecideAsAdmin,
		)

		leaves.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			authorize(rbac.ResourceLeave, rbac.ActionRead),
			handler.GetByID,
		)
	}
}
