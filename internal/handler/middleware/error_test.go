//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "conflict"
		_ = c.Error(gin.Error{Err: errors.New("taken"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("hidden"))
	})
	r.GET("/request-id", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return r
}

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRecovery(t *testing.T) {
	rec := serve(t, newErrorEngine(), "/panic")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, rec.Body.String())
}

func TestErrorHandler(t *testing.T) {
	r := newErrorEngine()

	t.Run("public error is rendered with its status", func(t *testing.T) {
		rec := serve(t, r, "/public")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"conflict"}}`, rec.Body.String())
	})

	t.Run("private error becomes a generic 500", func(t *testing.T) {
		rec := serve(t, r, "/private")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hidden")
	})
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	r := newErrorEngine()

	first := serve(t, r, "/request-id").Body.String()
	second := serve(t, r, "/request-id").Body.String()

	require.NotEmpty(t, first)
	assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, first)
	assert.NotEqual(t, first, second)
}
