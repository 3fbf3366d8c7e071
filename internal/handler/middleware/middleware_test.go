//go:build unit

package middleware_test

import (
	"net/http"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/infra/session"
	"nagoyameshi/internal/pkg/config"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

// newEngine returns an engine wrapped in a memory-backed session manager.
func newEngine() (*gin.Engine, *scs.SessionManager, http.Handler) {
	gin.SetMode(gin.TestMode)
	sm := session.NewManager(config.NewTestConfig(), nil)
	r := gin.New()
	return r, sm, sm.LoadAndSave(r)
}

// principalEcho reports the resolved principal as {"kind": ..., "id": ...}.
func principalEcho(c *gin.Context) {
	switch p := middleware.GetPrincipal(c).(type) {
	case access.Member:
		c.JSON(http.StatusOK, gin.H{"kind": "member", "id": p.ID})
	case access.Administrator:
		c.JSON(http.StatusOK, gin.H{"kind": "admin", "id": p.ID})
	default:
		c.JSON(http.StatusOK, gin.H{"kind": "guest", "id": 0})
	}
}

type echoBody struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}
