package queries

import (
	"context"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/errs"
)

const (
	FreeReviewLimit    = 3
	PremiumReviewsPage = 5
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReviewView, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, limit, offset int32) ([]ReviewView, error)
	CountByRestaurant(ctx context.Context, restaurantID int64) (int64, error)
}

type ReviewQueries interface {
	// List shows free members the latest few reviews and premium members a paged list.
	List(ctx context.Context, memberID, restaurantID int64, page int) (*ReviewListing, error)
	// ForEdit returns the review only to its author.
	ForEdit(ctx context.Context, p access.Principal, restaurantID, reviewID int64) (*ReviewView, error)
}

type reviewQueriesImpl struct {
	reviews     ReviewReadStore
	restaurants RestaurantReadStore
	entitlement access.EntitlementResolver
}

func NewReviewQueries(reviews ReviewReadStore, restaurants RestaurantReadStore, entitlement access.EntitlementResolver) ReviewQueries {
	return &reviewQueriesImpl{
		reviews:     reviews,
		restaurants: restaurants,
		entitlement: entitlement,
	}
}

func (q *reviewQueriesImpl) List(ctx context.Context, memberID, restaurantID int64, page int) (*ReviewListing, error) {
	summary, err := q.restaurants.FindSummary(ctx, restaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRestaurantNotFound
		}
		return nil, err
	}

	ent, err := q.entitlement.Resolve(ctx, memberID)
	if err != nil {
		return nil, errs.Mark(err, access.ErrEntitlementLookup)
	}

	listing := &ReviewListing{Restaurant: *summary}
	if ent != access.Premium {
		items, err := q.reviews.ListByRestaurant(ctx, restaurantID, FreeReviewLimit, 0)
		if err != nil {
			return nil, err
		}
		listing.Limited = true
		listing.Reviews = NewPage(items, int64(len(items)), 1, FreeReviewLimit)
		return listing, nil
	}

	page = NormalizePage(page)
	items, err := q.reviews.ListByRestaurant(ctx, restaurantID, PremiumReviewsPage, offset(page, PremiumReviewsPage))
	if err != nil {
		return nil, err
	}
	total, err := q.reviews.CountByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	listing.Reviews = NewPage(items, total, page, PremiumReviewsPage)
	return listing, nil
}

func (q *reviewQueriesImpl) ForEdit(ctx context.Context, p access.Principal, restaurantID, reviewID int64) (*ReviewView, error) {
	rv, err := q.reviews.FindByID(ctx, reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReviewNotFound
		}
		return nil, err
	}
	if rv.RestaurantID != restaurantID {
		return nil, errs.ErrReviewNotFound
	}
	fallback := access.Target{Route: access.RouteRestaurantReviews, ID: restaurantID}
	if v := access.AuthorizeMutation(p, rv, fallback); !v.Allowed() {
		return nil, access.Deny(v)
	}
	return rv, nil
}
