package readstore

import (
	"context"

	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"
	"nagoyameshi/internal/usecase/queries"
)

type ReservationViewQueries interface {
	ListReservationsByUser(ctx context.Context, db pgsql.DBTX, arg pgsql.ListByUserParams) ([]pgsql.ReservationListRow, error)
	CountReservationsByUser(ctx context.Context, db pgsql.DBTX, userID int64) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      pgsql.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db pgsql.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, pgsql.ListByUserParams{UserID: userID, Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	views := make([]queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.ReservationView{
			ID:              row.ID,
			RestaurantID:    row.RestaurantID,
			RestaurantName:  row.RestaurantName,
			RestaurantImage: row.RestaurantImage,
			ReservedAt:      pgconv.TimeFromPgtype(row.ReservedDatetime),
			NumberOfPeople:  int(row.NumberOfPeople),
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func (r *ReservationReadStore) CountByUser(ctx context.Context, userID int64) (int64, error) {
	n, err := r.queries.CountReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations by user", err)
	}
	return n, nil
}

type FavoriteViewQueries interface {
	IsFavorite(ctx context.Context, db pgsql.DBTX, userID, restaurantID int64) (bool, error)
	ListFavoritesByUser(ctx context.Context, db pgsql.DBTX, arg pgsql.ListByUserParams) ([]pgsql.FavoriteListRow, error)
	CountFavoritesByUser(ctx context.Context, db pgsql.DBTX, userID int64) (int64, error)
}

type FavoriteReadStore struct {
	queries FavoriteViewQueries
	db      pgsql.DBTX
}

func NewFavoriteReadStore(queries FavoriteViewQueries, db pgsql.DBTX) *FavoriteReadStore {
	return &FavoriteReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FavoriteReadStore) IsFavorite(ctx context.Context, userID, restaurantID int64) (bool, error) {
	ok, err := r.queries.IsFavorite(ctx, r.db, userID, restaurantID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check favorite", err)
	}
	return ok, nil
}

func (r *FavoriteReadStore) ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]queries.FavoriteView, error) {
	rows, err := r.queries.ListFavoritesByUser(ctx, r.db, pgsql.ListByUserParams{UserID: userID, Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites by user", err)
	}
	views := make([]queries.FavoriteView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.FavoriteView{
			RestaurantID: row.RestaurantID,
			Name:         row.Name,
			Image:        row.Image,
			Description:  row.Description,
			LowestPrice:  int(row.LowestPrice),
			HighestPrice: int(row.HighestPrice),
			FavoritedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func (r *FavoriteReadStore) CountByUser(ctx context.Context, userID int64) (int64, error) {
	n, err := r.queries.CountFavoritesByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count favorites by user", err)
	}
	return n, nil
}

type UserViewQueries interface {
	GetUserByID(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.User, error)
	ListUsers(ctx context.Context, db pgsql.DBTX, arg pgsql.ListUsersParams) ([]pgsql.User, error)
	CountUsers(ctx context.Context, db pgsql.DBTX, keyword string) (int64, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      pgsql.DBTX
}

func NewUserReadStore(queries UserViewQueries, db pgsql.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	v := toUserView(row)
	return &v, nil
}

func (r *UserReadStore) List(ctx context.Context, keyword string, limit, offset int32) ([]queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db, pgsql.ListUsersParams{Keyword: pgconv.LikeLiteral(keyword), Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	views := make([]queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

func (r *UserReadStore) Count(ctx context.Context, keyword string) (int64, error) {
	n, err := r.queries.CountUsers(ctx, r.db, pgconv.LikeLiteral(keyword))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count users", err)
	}
	return n, nil
}

func toUserView(row pgsql.User) queries.UserView {
	return queries.UserView{
		ID:          row.ID,
		Name:        row.Name,
		Kana:        row.Kana,
		Email:       row.Email,
		PostalCode:  row.PostalCode,
		Address:     row.Address,
		PhoneNumber: row.PhoneNumber,
		Birthday:    pgconv.DatePtrFromPgtype(row.Birthday),
		Occupation:  row.Occupation,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
