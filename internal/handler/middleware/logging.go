package middleware

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the process logger and installs it as the slog default.
// Release mode writes JSON; every other mode writes text.
func NewLogger(cfg config.LogConfig) *Logger {
	level, ok := levels[strings.ToLower(cfg.Level)]
	if !ok {
		level = slog.LevelInfo
	}
	tz := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if t, ok := a.Value.Any().(time.Time); ok && a.Key == slog.TimeKey {
				a.Value = slog.StringValue(t.In(tz).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)

	return &Logger{logger: logger, timezone: tz}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware writes one line per request once the response is known,
// so the resolved principal is part of it.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := start.In(l.timezone).Format("20060102150405") + "-" + uuid.NewString()[:8]
		c.Set(requestIDKey, id)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String(requestIDKey, id),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		}
		attrs = append(attrs, principalAttrs(c)...)
		if loc := c.Writer.Header().Get("Location"); loc != "" && status == http.StatusFound {
			attrs = append(attrs, slog.String("redirect", loc))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		l.logger.LogAttrs(c.Request.Context(), level, "request", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func principalAttrs(c *gin.Context) []slog.Attr {
	p := GetPrincipal(c)
	attrs := []slog.Attr{slog.String("principal", access.Kind(p))}
	switch v := p.(type) {
	case access.Member:
		attrs = append(attrs, slog.Int64("member_id", v.ID))
	case access.Administrator:
		attrs = append(attrs, slog.Int64("admin_id", v.ID))
	}
	return attrs
}
