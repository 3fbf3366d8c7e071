package components

import (
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/infra/readstore"
	"nagoyameshi/internal/infra/uow"
	"nagoyameshi/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Restaurant
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RestaurantViewQueries)),
		),
		fx.Annotate(
			readstore.NewRestaurantReadStore,
			fx.As(new(queries.RestaurantReadStore)),
		),
		// Category
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CategoryViewQueries)),
		),
		fx.Annotate(
			readstore.NewCategoryReadStore,
			fx.As(new(queries.CategoryReadStore)),
		),
		// Review
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReviewViewQueries)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Favorite
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FavoriteViewQueries)),
		),
		fx.Annotate(
			readstore.NewFavoriteReadStore,
			fx.As(new(queries.FavoriteReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserViewQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Site
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SiteViewQueries)),
		),
		fx.Annotate(
			readstore.NewSiteReadStore,
			fx.As(new(queries.SiteReadStore)),
		),
		// Subscription
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SubscriptionViewQueries)),
		),
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(queries.SubscriptionReadStore)),
		),
		// Identity
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.IdentityViewQueries)),
		),
		fx.Annotate(
			readstore.NewIdentityReadStore,
			fx.As(new(queries.IdentityReadStore)),
		),
	),
)

// repositories are built per transaction by the unit of work
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}
