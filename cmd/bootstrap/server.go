package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"nagoyameshi/internal/handler"
	"nagoyameshi/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HTTPModule = fx.Module("http",
	fx.Provide(
		NewEngine,
		handler.NewHTTPHandler,
	),
)

// ServerModule listens on cfg.Server.Port for the lifetime of the app.
var ServerModule = fx.Module("server",
	fx.Provide(NewServer),
	fx.Invoke(func(*http.Server) {}),
)

func NewEngine() *gin.Engine {
	gin.EnableJsonDecoderDisallowUnknownFields()
	return gin.New()
}

func NewServer(lc fx.Lifecycle, h http.Handler, cfg config.Config, logger *slog.Logger) *http.Server {
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("🚀 サーバーを起動します", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("サーバーの起動に失敗しました", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 サーバーを停止します")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
	return srv
}
