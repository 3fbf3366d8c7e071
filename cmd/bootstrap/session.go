package bootstrap

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/infra/session"
	"nagoyameshi/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewRedisClient,
		session.NewManager,
	),
)

// NewRedisClient returns nil when REDIS_URL is unset; sessions then live in memory.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if cfg.Redis.URL == "" {
		logger.Warn("REDIS_URL未設定のためセッションをメモリに保存します")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := session.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
