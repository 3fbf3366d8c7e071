//go:build unit

package api_test

import (
	"net/http"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/infra/session"
	"nagoyameshi/internal/pkg/config"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

// testServer is a bare engine behind a real in-memory session manager.
type testServer struct {
	engine    *gin.Engine
	sessions  *scs.SessionManager
	responder *respond.Responder
	handler   http.Handler
	principal access.Principal
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()

	sm := session.NewManager(config.NewTestConfig(), nil)
	ts := &testServer{
		engine:    gin.New(),
		sessions:  sm,
		responder: respond.NewResponder(sm),
		principal: access.Guest{},
	}
	ts.engine.Use(func(c *gin.Context) {
		middleware.SetPrincipal(c, ts.principal)
		c.Next()
	})
	ts.handler = sm.LoadAndSave(ts.engine)
	return ts
}

func (ts *testServer) actAs(p access.Principal) {
	ts.principal = p
}

var (
	member = access.Member{ID: 1, Email: "taro@example.com"}
	other  = access.Member{ID: 2, Email: "hanako@example.com"}
	admin  = access.Administrator{ID: 9, Email: "admin@example.com"}
)
