package rbac

import (
	"github.com/kidaholy/human-resource-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, jwtSecret string) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(jwtSecret))
	{
		group.POST("/enforce", middleware.RBACAuthorize(service, ResourceRBAC, ActionRead), handler.Enforce)
		group.GET("/policies", middleware.RBACAuthorize(service, ResourceRBAC, ActionRead), handler.ListPolicies)
		group.POST("/reload", middleware.RBACAuthorize(service, ResourceRBAC, ActionManage), handler.Reload)
	}
}
