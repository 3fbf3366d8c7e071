package readstore

import (
	"context"

	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"
	"nagoyameshi/internal/usecase/queries"
)

type RestaurantViewQueries interface {
	SearchRestaurants(ctx context.Context, db pgsql.DBTX, arg pgsql.SearchRestaurantsParams) ([]pgsql.RestaurantListRow, error)
	CountRestaurants(ctx context.Context, db pgsql.DBTX, arg pgsql.CountRestaurantsParams) (int64, error)
	GetRestaurantSummary(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.RestaurantListRow, error)
	ListCategoriesForRestaurants(ctx context.Context, db pgsql.DBTX, restaurantIDs []int64) ([]pgsql.RestaurantCategoryRow, error)
	ListHolidaysForRestaurant(ctx context.Context, db pgsql.DBTX, restaurantID int64) ([]pgsql.RegularHoliday, error)
	ListRegularHolidays(ctx context.Context, db pgsql.DBTX) ([]pgsql.RegularHoliday, error)
}

type RestaurantReadStore struct {
	queries RestaurantViewQueries
	db      pgsql.DBTX
}

func NewRestaurantReadStore(queries RestaurantViewQueries, db pgsql.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RestaurantReadStore) Search(ctx context.Context, f queries.RestaurantFilter) ([]queries.RestaurantSummary, error) {
	rows, err := r.queries.SearchRestaurants(ctx, r.db, pgsql.SearchRestaurantsParams{
		Keyword:    pgconv.LikeLiteral(f.Keyword),
		WideMatch:  f.WideMatch,
		CategoryID: pgconv.Int8PtrToPgtype(f.CategoryID),
		MaxPrice:   pgconv.IntPtrToPgInt4(f.MaxPrice),
		Sort:       string(f.Sort),
		Limit:      f.Limit,
		Offset:     f.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search restaurants", err)
	}

	items := make([]queries.RestaurantSummary, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		items = append(items, toRestaurantSummary(row))
		ids = append(ids, row.ID)
	}
	if err := r.attachCategories(ctx, ids, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RestaurantReadStore) Count(ctx context.Context, f queries.RestaurantFilter) (int64, error) {
	n, err := r.queries.CountRestaurants(ctx, r.db, pgsql.CountRestaurantsParams{
		Keyword:    pgconv.LikeLiteral(f.Keyword),
		WideMatch:  f.WideMatch,
		CategoryID: pgconv.Int8PtrToPgtype(f.CategoryID),
		MaxPrice:   pgconv.IntPtrToPgInt4(f.MaxPrice),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count restaurants", err)
	}
	return n, nil
}

func (r *RestaurantReadStore) FindSummary(ctx context.Context, id int64) (*queries.RestaurantSummary, error) {
	row, err := r.queries.GetRestaurantSummary(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get restaurant summary", err)
	}
	items := []queries.RestaurantSummary{toRestaurantSummary(row)}
	if err := r.attachCategories(ctx, []int64{id}, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (r *RestaurantReadStore) Holidays(ctx context.Context, restaurantID int64) ([]queries.HolidayView, error) {
	rows, err := r.queries.ListHolidaysForRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurant holidays", err)
	}
	return toHolidayViews(rows), nil
}

func (r *RestaurantReadStore) AllHolidays(ctx context.Context) ([]queries.HolidayView, error) {
	rows, err := r.queries.ListRegularHolidays(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list regular holidays", err)
	}
	return toHolidayViews(rows), nil
}

// attachCategories fills Categories in place with a single query for the whole page.
func (r *RestaurantReadStore) attachCategories(ctx context.Context, ids []int64, items []queries.RestaurantSummary) error {
	if len(ids) == 0 {
		return nil
	}
	rows, err := r.queries.ListCategoriesForRestaurants(ctx, r.db, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list restaurant categories", err)
	}
	byRestaurant := make(map[int64][]queries.CategoryView, len(ids))
	for _, row := range rows {
		byRestaurant[row.RestaurantID] = append(byRestaurant[row.RestaurantID], queries.CategoryView{ID: row.CategoryID, Name: row.Name})
	}
	for i := range items {
		if cats, ok := byRestaurant[items[i].ID]; ok {
			items[i].Categories = cats
		} else {
			items[i].Categories = []queries.CategoryView{}
		}
	}
	return nil
}

func toRestaurantSummary(row pgsql.RestaurantListRow) queries.RestaurantSummary {
	return queries.RestaurantSummary{
		ID:               row.ID,
		Name:             row.Name,
		Image:            row.Image,
		Description:      row.Description,
		LowestPrice:      int(row.LowestPrice),
		HighestPrice:     int(row.HighestPrice),
		PostalCode:       row.PostalCode,
		Address:          row.Address,
		OpeningTime:      pgconv.ClockFromPgtype(row.OpeningTime),
		ClosingTime:      pgconv.ClockFromPgtype(row.ClosingTime),
		SeatingCapacity:  int(row.SeatingCapacity),
		AverageScore:     row.AverageScore,
		ReviewCount:      row.ReviewCount,
		ReservationCount: row.ReservationCount,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toHolidayViews(rows []pgsql.RegularHoliday) []queries.HolidayView {
	views := make([]queries.HolidayView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.HolidayView{ID: row.ID, Day: row.Day})
	}
	return views
}

type CategoryViewQueries interface {
	ListCategories(ctx context.Context, db pgsql.DBTX, arg pgsql.ListCategoriesParams) ([]pgsql.Category, error)
	CountCategories(ctx context.Context, db pgsql.DBTX, keyword string) (int64, error)
}

type CategoryReadStore struct {
	queries CategoryViewQueries
	db      pgsql.DBTX
}

func NewCategoryReadStore(queries CategoryViewQueries, db pgsql.DBTX) *CategoryReadStore {
	return &CategoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CategoryReadStore) List(ctx context.Context, keyword string, limit, offset int32) ([]queries.CategoryView, error) {
	rows, err := r.queries.ListCategories(ctx, r.db, pgsql.ListCategoriesParams{Keyword: pgconv.LikeLiteral(keyword), Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	views := make([]queries.CategoryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.CategoryView{ID: row.ID, Name: row.Name})
	}
	return views, nil
}

func (r *CategoryReadStore) Count(ctx context.Context, keyword string) (int64, error) {
	n, err := r.queries.CountCategories(ctx, r.db, pgconv.LikeLiteral(keyword))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count categories", err)
	}
	return n, nil
}
