package middleware

import (
	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/handler/respond"

	"github.com/gin-gonic/gin"
)

type GuardMiddleware struct {
	guard     *access.Guard
	responder *respond.Responder
}

func NewGuardMiddleware(guard *access.Guard, responder *respond.Responder) *GuardMiddleware {
	return &GuardMiddleware{
		guard:     guard,
		responder: responder,
	}
}

// Require must run after IdentityMiddleware.Resolve.
func (m *GuardMiddleware) Require(class access.AccessClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := m.guard.Authorize(c.Request.Context(), GetPrincipal(c), class)
		if err != nil {
			m.responder.Error(c, err)
			return
		}
		if !v.Allowed() {
			m.responder.Redirect(c, v)
			return
		}
		c.Next()
	}
}
