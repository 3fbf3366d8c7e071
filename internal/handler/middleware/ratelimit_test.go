//go:build unit

package middleware_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimiter(t *testing.T) {
	r, _, h := newEngine()
	limiter := middleware.NewLoginRateLimiter(config.RateLimitConfig{LoginPerMinute: 1, LoginBurst: 2})
	r.POST("/login", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	post := func(remoteAddr string) *stdhttptest.ResponseRecorder {
		req := stdhttptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remoteAddr
		w := stdhttptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	t.Run("burst passes then 429 with Retry-After", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, post("198.51.100.1:5000").Code)
		assert.Equal(t, http.StatusOK, post("198.51.100.1:5001").Code)

		w := post("198.51.100.1:5002")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "60", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "ログイン試行回数が多すぎます")
	})

	t.Run("other clients have their own budget", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, post("198.51.100.2:5000").Code)
	})
}

func TestLoginRateLimiter_Defaults(t *testing.T) {
	r, _, h := newEngine()
	limiter := middleware.NewLoginRateLimiter(config.RateLimitConfig{})
	r.POST("/login", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := stdhttptest.NewRequest(http.MethodPost, "/login", nil)
	w := stdhttptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = stdhttptest.NewRecorder()
	h.ServeHTTP(w, stdhttptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "burst falls back to one")
}
