package audit

import (
	"github.com/kidaholy/human-resource-sub000/internal/middleware"
	"github.com/kidaholy/human-resource-sub000/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer middleware.RBACEnforcer,
	jwtSecret string,
	logger *zap.Logger,
) {
	r.GET("/leave/:id/audit",
		middleware.AuthMiddleware(jwtSecret),
		middleware.ContextLogger(logger),
		middleware.ExtractActor(),
		middleware.RateLimitByUser(3, 10),
		middleware.RBACAuthorize(enforcer, rbac.ResourceLeaveAudit, rbac.ActionRead),
		handler.History,
	)
}
