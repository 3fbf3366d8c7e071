package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const maxTrackedClients = 10000

var errTooManyAttempts = errors.New("too many login attempts")

// LoginRateLimiter throttles credential submissions per client IP.
type LoginRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewLoginRateLimiter(cfg config.RateLimitConfig) *LoginRateLimiter {
	perMinute := cfg.LoginPerMinute
	if perMinute <= 0 {
		perMinute = 5
	}
	burst := cfg.LoginBurst
	if burst <= 0 {
		burst = 1
	}
	return &LoginRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
}

func (l *LoginRateLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters[key]; ok {
		return lim
	}
	// crude bound on memory; every client starts over
	if len(l.limiters) >= maxTrackedClients {
		l.limiters = make(map[string]*rate.Limiter)
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	l.limiters[key] = lim
	return lim
}

func (l *LoginRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.get(ip).Allow() {
			slog.Warn("Login rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			c.Header("Retry-After", "60")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errTooManyAttempts,
				"ログイン試行回数が多すぎます。しばらくしてから再度お試しください", nil)
			return
		}
		c.Next()
	}
}
