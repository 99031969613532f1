package middleware

import (
	"github.com/kidaholy/human-resource-sub000/internal/shared/apperror"
	"github.com/kidaholy/human-resource-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACEnforcer is satisfied by rbac.Service.
type RBACEnforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

func RBACAuthorize(enforcer RBACEnforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			abortWith(c, apperror.ErrInternal)
			return
		}

		if !allowed {
			response.Error(c,
				apperror.ErrForbidden.HTTPStatus,
				apperror.ErrForbidden.Code,
				apperror.ErrForbidden.Message,
				map[string]string{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
