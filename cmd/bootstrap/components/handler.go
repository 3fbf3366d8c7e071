package components

import (
	"nagoyameshi/internal/handler"
	"nagoyameshi/internal/handler/api"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		respond.NewResponder,
		middleware.NewIdentityMiddleware,
		middleware.NewGuardMiddleware,
		func(cfg config.Config) *middleware.LoginRateLimiter {
			return middleware.NewLoginRateLimiter(cfg.RateLimit)
		},
		handler.NewMiddlewares,

		api.NewAuthHandler,
		api.NewRestaurantHandler,
		api.NewUserHandler,
		api.NewReviewHandler,
		api.NewReservationHandler,
		api.NewFavoriteHandler,
		api.NewSubscriptionHandler,
		api.NewAdminHandler,
		api.NewCatalogHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
