package queries

import (
	"context"
	"strings"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/errs"
)

type ReservationReadStore interface {
	ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]ReservationView, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

type FavoriteReadStore interface {
	IsFavorite(ctx context.Context, userID, restaurantID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]FavoriteView, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context, keyword string, limit, offset int32) ([]UserView, error)
	Count(ctx context.Context, keyword string) (int64, error)
}

// MemberQueries serves the signed-in member's own pages and the admin member directory.
type MemberQueries interface {
	Reservations(ctx context.Context, memberID int64, page int) (Page[ReservationView], error)
	Favorites(ctx context.Context, memberID int64, page int) (Page[FavoriteView], error)
	Profile(ctx context.Context, memberID int64) (*UserView, error)
	ProfileForEdit(ctx context.Context, p access.Principal, userID int64) (*UserView, error)
	Directory(ctx context.Context, keyword string, page int) (Page[UserView], error)
	Member(ctx context.Context, id int64) (*UserView, error)
}

type memberQueriesImpl struct {
	reservations ReservationReadStore
	favorites    FavoriteReadStore
	users        UserReadStore
}

func NewMemberQueries(reservations ReservationReadStore, favorites FavoriteReadStore, users UserReadStore) MemberQueries {
	return &memberQueriesImpl{
		reservations: reservations,
		favorites:    favorites,
		users:        users,
	}
}

func (q *memberQueriesImpl) Reservations(ctx context.Context, memberID int64, page int) (Page[ReservationView], error) {
	page = NormalizePage(page)
	items, err := q.reservations.ListByUser(ctx, memberID, DefaultPerPage, offset(page, DefaultPerPage))
	if err != nil {
		return Page[ReservationView]{}, err
	}
	total, err := q.reservations.CountByUser(ctx, memberID)
	if err != nil {
		return Page[ReservationView]{}, err
	}
	return NewPage(items, total, page, DefaultPerPage), nil
}

func (q *memberQueriesImpl) Favorites(ctx context.Context, memberID int64, page int) (Page[FavoriteView], error) {
	page = NormalizePage(page)
	items, err := q.favorites.ListByUser(ctx, memberID, DefaultPerPage, offset(page, DefaultPerPage))
	if err != nil {
		return Page[FavoriteView]{}, err
	}
	total, err := q.favorites.CountByUser(ctx, memberID)
	if err != nil {
		return Page[FavoriteView]{}, err
	}
	return NewPage(items, total, page, DefaultPerPage), nil
}

func (q *memberQueriesImpl) Profile(ctx context.Context, memberID int64) (*UserView, error) {
	return q.Member(ctx, memberID)
}

func (q *memberQueriesImpl) ProfileForEdit(ctx context.Context, p access.Principal, userID int64) (*UserView, error) {
	u, err := q.Member(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v := access.AuthorizeMutation(p, u, access.Target{Route: access.RouteUser}); !v.Allowed() {
		return nil, access.Deny(v)
	}
	return u, nil
}

func (q *memberQueriesImpl) Directory(ctx context.Context, keyword string, page int) (Page[UserView], error) {
	page = NormalizePage(page)
	keyword = strings.TrimSpace(keyword)
	items, err := q.users.List(ctx, keyword, DefaultPerPage, offset(page, DefaultPerPage))
	if err != nil {
		return Page[UserView]{}, err
	}
	total, err := q.users.Count(ctx, keyword)
	if err != nil {
		return Page[UserView]{}, err
	}
	return NewPage(items, total, page, DefaultPerPage), nil
}

func (q *memberQueriesImpl) Member(ctx context.Context, id int64) (*UserView, error) {
	u, err := q.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
