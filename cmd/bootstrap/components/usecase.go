package components

import (
	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/pkg/password"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	password.NewBcryptHasher,
	func(s *jwt.Service) queries.TokenValidator { return s },
	func(q queries.SubscriptionQueries) access.EntitlementResolver { return q },
	access.NewGuard,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewMemberCommands,
		commands.NewSubscriptionCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewIdentityQueries,
		queries.NewRestaurantQueries,
		queries.NewReviewQueries,
		queries.NewMemberQueries,
		queries.NewSubscriptionQueries,
		func(store queries.SiteReadStore, cfg config.Config) queries.SiteQueries {
			return queries.NewSiteQueries(store, cfg.Billing.MonthlyFee)
		},
	),
)
