package shared

import (
	"context"

	"nagoyameshi/internal/domain/admin"
	"nagoyameshi/internal/domain/category"
	"nagoyameshi/internal/domain/favorite"
	"nagoyameshi/internal/domain/reservation"
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/domain/review"
	"nagoyameshi/internal/domain/site"
	"nagoyameshi/internal/domain/subscription"
	"nagoyameshi/internal/domain/user"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Users() UserRepository
	Admins() AdminRepository
	Restaurants() RestaurantRepository
	Categories() CategoryRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Favorites() FavoriteRepository
	Subscriptions() SubscriptionRepository
	Site() SiteRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type AdminRepository interface {
	Create(ctx context.Context, a *admin.Admin) (int64, error)
	FindByEmail(ctx context.Context, email string) (*admin.Admin, error)
}

type RestaurantRepository interface {
	// Create and Update replace category and holiday associations in the same transaction.
	Create(ctx context.Context, r *restaurant.Restaurant) (int64, error)
	Update(ctx context.Context, r *restaurant.Restaurant) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*restaurant.Restaurant, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *category.Category) (int64, error)
	Update(ctx context.Context, c *category.Category) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*category.Category, error)
	CountExisting(ctx context.Context, ids []int64) (int, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) (int64, error)
	FindByID(ctx context.Context, id int64) (*review.Review, error)
	Update(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id int64) error
}

type FavoriteRepository interface {
	// Add reports false when the pair already existed.
	Add(ctx context.Context, f *favorite.Favorite) (bool, error)
	// Remove reports false when there was nothing to remove.
	Remove(ctx context.Context, userID, restaurantID int64) (bool, error)
}

type SubscriptionRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*subscription.Subscription, error)
	FindByProviderID(ctx context.Context, providerSubscriptionID string) (*subscription.Subscription, error)
	Save(ctx context.Context, s *subscription.Subscription) (int64, error)
}

type SiteRepository interface {
	Company(ctx context.Context) (*site.Company, error)
	SaveCompany(ctx context.Context, c *site.Company) error
	Terms(ctx context.Context) (*site.Terms, error)
	SaveTerms(ctx context.Context, t *site.Terms) error
}
