package middleware

import (
	"github.com/kidaholy/human-resource-sub000/internal/shared/actor"
	"github.com/kidaholy/human-resource-sub000/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

const contextActor = "actor"

// ExtractActor turns the verified claims into an actor.Actor for handlers.
func ExtractActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		a := actor.Actor{
			UserID: c.GetString(ContextUserID),
			Role:   c.GetString(ContextRole),
		}
		if !a.Valid() {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		c.Set(contextActor, a)
		c.Next()
	}
}

// ActorFrom returns the actor stored by ExtractActor.
func ActorFrom(c *gin.Context) (actor.Actor, bool) {
	v, ok := c.Get(contextActor)
	if !ok {
		return actor.Actor{}, false
	}
	a, ok := v.(actor.Actor)
	return a, ok
}
