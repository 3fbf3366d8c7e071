package middleware

import (
	"log/slog"
	"strings"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/infra/session"
	"nagoyameshi/internal/pkg/cookie"
	"nagoyameshi/internal/usecase/queries"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

const ctxPrincipalKey = "principal"

type IdentityMiddleware struct {
	identities queries.IdentityQueries
	sessions   *scs.SessionManager
}

func NewIdentityMiddleware(identities queries.IdentityQueries, sessions *scs.SessionManager) *IdentityMiddleware {
	return &IdentityMiddleware{
		identities: identities,
		sessions:   sessions,
	}
}

// Resolve attaches exactly one principal to every request. A valid bearer token or
// access_token cookie wins over the session; anything unresolvable is a guest.
func (m *IdentityMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if token := bearerToken(c); token != "" {
			p, err := m.identities.FromToken(ctx, token)
			if err == nil {
				SetPrincipal(c, p)
				c.Next()
				return
			}
			slog.Warn("Token validation failed in identity middleware", "error", err.Error())
		}

		var (
			p   access.Principal = access.Guest{}
			err error
		)
		switch {
		case m.sessions.Exists(ctx, session.KeyAdminID):
			p, err = m.identities.Admin(ctx, m.sessions.GetInt64(ctx, session.KeyAdminID))
			if err == nil {
				if _, ok := p.(access.Guest); ok {
					m.sessions.Remove(ctx, session.KeyAdminID)
				}
			}
		case m.sessions.Exists(ctx, session.KeyMemberID):
			p, err = m.identities.Member(ctx, m.sessions.GetInt64(ctx, session.KeyMemberID))
			if err == nil {
				if _, ok := p.(access.Guest); ok {
					m.sessions.Remove(ctx, session.KeyMemberID)
				}
			}
		}
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		SetPrincipal(c, p)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func SetPrincipal(c *gin.Context, p access.Principal) {
	c.Set(ctxPrincipalKey, p)
}

// GetPrincipal returns Guest when identity has not been resolved.
func GetPrincipal(c *gin.Context) access.Principal {
	if v, exists := c.Get(ctxPrincipalKey); exists {
		if p, ok := v.(access.Principal); ok {
			return p
		}
	}
	return access.Guest{}
}

// GetMemberID is for handlers behind a member guard.
func GetMemberID(c *gin.Context) (int64, bool) {
	return access.MemberID(GetPrincipal(c))
}
