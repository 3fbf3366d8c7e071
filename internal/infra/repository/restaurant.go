package repository

import (
	"context"

	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"
)

type RestaurantWriteQueries interface {
	CreateRestaurant(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateRestaurantParams) (int64, error)
	UpdateRestaurant(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateRestaurantParams) (int64, error)
	DeleteRestaurant(ctx context.Context, db pgsql.DBTX, id int64) (int64, error)
	GetRestaurantByID(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Restaurant, error)
	RestaurantExists(ctx context.Context, db pgsql.DBTX, id int64) (bool, error)
	DeleteRestaurantCategories(ctx context.Context, db pgsql.DBTX, restaurantID int64) error
	InsertRestaurantCategories(ctx context.Context, db pgsql.DBTX, restaurantID int64, categoryIDs []int64) error
	DeleteRestaurantHolidays(ctx context.Context, db pgsql.DBTX, restaurantID int64) error
	InsertRestaurantHolidays(ctx context.Context, db pgsql.DBTX, restaurantID int64, holidayIDs []int64) error
	ListRestaurantCategoryIDs(ctx context.Context, db pgsql.DBTX, restaurantID int64) ([]int64, error)
	ListRestaurantHolidayIDs(ctx context.Context, db pgsql.DBTX, restaurantID int64) ([]int64, error)
}

type RestaurantRepository struct {
	queries RestaurantWriteQueries
	db      pgsql.DBTX
}

func NewRestaurantRepository(queries RestaurantWriteQueries, db pgsql.DBTX) *RestaurantRepository {
	return &RestaurantRepository{queries: queries, db: db}
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *restaurant.Restaurant) (int64, error) {
	opening, closing, err := businessHours(rest)
	if err != nil {
		return 0, infra.WrapRepoErr("invalid business hours", err, infra.KindDBFailure)
	}
	id, err := r.queries.CreateRestaurant(ctx, r.db, pgsql.CreateRestaurantParams{
		Name:            rest.Name(),
		Image:           rest.Image(),
		Description:     rest.Description(),
		LowestPrice:     int32(rest.Price().Lowest()),
		HighestPrice:    int32(rest.Price().Highest()),
		PostalCode:      rest.PostalCode(),
		Address:         rest.Address(),
		OpeningTime:     opening,
		ClosingTime:     closing,
		SeatingCapacity: int32(rest.SeatingCapacity()),
		CreatedAt:       pgconv.TimeToPgtype(rest.CreatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create restaurant", err)
	}
	if err := r.replaceAssociations(ctx, id, rest, false); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, rest *restaurant.Restaurant) error {
	opening, closing, err := businessHours(rest)
	if err != nil {
		return infra.WrapRepoErr("invalid business hours", err, infra.KindDBFailure)
	}
	n, err := r.queries.UpdateRestaurant(ctx, r.db, pgsql.UpdateRestaurantParams{
		ID:              rest.ID(),
		Name:            rest.Name(),
		Image:           rest.Image(),
		Description:     rest.Description(),
		LowestPrice:     int32(rest.Price().Lowest()),
		HighestPrice:    int32(rest.Price().Highest()),
		PostalCode:      rest.PostalCode(),
		Address:         rest.Address(),
		OpeningTime:     opening,
		ClosingTime:     closing,
		SeatingCapacity: int32(rest.SeatingCapacity()),
		UpdatedAt:       pgconv.TimeToPgtype(rest.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update restaurant", err)
	}
	if n == 0 {
		return infra.NotFound("restaurant not found")
	}
	return r.replaceAssociations(ctx, rest.ID(), rest, true)
}

// replaceAssociations must run on the same DBTX as the row write.
func (r *RestaurantRepository) replaceAssociations(ctx context.Context, id int64, rest *restaurant.Restaurant, clear bool) error {
	if clear {
		if err := r.queries.DeleteRestaurantCategories(ctx, r.db, id); err != nil {
			return infra.WrapRepoErr("failed to clear restaurant categories", err)
		}
		if err := r.queries.DeleteRestaurantHolidays(ctx, r.db, id); err != nil {
			return infra.WrapRepoErr("failed to clear restaurant holidays", err)
		}
	}
	if ids := rest.CategoryIDs(); len(ids) > 0 {
		if err := r.queries.InsertRestaurantCategories(ctx, r.db, id, ids); err != nil {
			return infra.WrapRepoErr("failed to attach restaurant categories", err)
		}
	}
	if ids := rest.HolidayIDs(); len(ids) > 0 {
		if err := r.queries.InsertRestaurantHolidays(ctx, r.db, id, ids); err != nil {
			return infra.WrapRepoErr("failed to attach restaurant holidays", err)
		}
	}
	return nil
}

func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteRestaurant(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete restaurant", err)
	}
	if n == 0 {
		return infra.NotFound("restaurant not found")
	}
	return nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	row, err := r.queries.GetRestaurantByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find restaurant", err)
	}
	categoryIDs, err := r.queries.ListRestaurantCategoryIDs(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurant categories", err)
	}
	holidayIDs, err := r.queries.ListRestaurantHolidayIDs(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurant holidays", err)
	}
	return toRestaurant(row, categoryIDs, holidayIDs), nil
}

func (r *RestaurantRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := r.queries.RestaurantExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check restaurant", err)
	}
	return ok, nil
}
