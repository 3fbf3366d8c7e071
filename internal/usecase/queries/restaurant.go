package queries

import (
	"context"
	"strings"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/errs"
)

const (
	homeSectionSize    = 6
	allCategoriesLimit = 500
)

// RestaurantSearch is the member-facing listing request.
type RestaurantSearch struct {
	Keyword    string
	CategoryID *int64
	MaxPrice   *int
	Sort       restaurant.SortKey
	Page       int
}

// RestaurantFilter is the storage-level form of a search.
type RestaurantFilter struct {
	Keyword string
	// WideMatch extends keyword matching to address and category names.
	WideMatch  bool
	CategoryID *int64
	MaxPrice   *int
	Sort       restaurant.SortKey
	Limit      int32
	Offset     int32
}

type RestaurantReadStore interface {
	Search(ctx context.Context, f RestaurantFilter) ([]RestaurantSummary, error)
	Count(ctx context.Context, f RestaurantFilter) (int64, error)
	FindSummary(ctx context.Context, id int64) (*RestaurantSummary, error)
	Holidays(ctx context.Context, restaurantID int64) ([]HolidayView, error)
	AllHolidays(ctx context.Context) ([]HolidayView, error)
}

type CategoryReadStore interface {
	List(ctx context.Context, keyword string, limit, offset int32) ([]CategoryView, error)
	Count(ctx context.Context, keyword string) (int64, error)
}

type RestaurantQueries interface {
	Home(ctx context.Context) (*HomeView, error)
	Search(ctx context.Context, s RestaurantSearch) (Page[RestaurantSummary], error)
	Detail(ctx context.Context, p access.Principal, id int64) (*RestaurantDetail, error)
	Summary(ctx context.Context, id int64) (*RestaurantSummary, error)
	AdminSearch(ctx context.Context, keyword string, page int) (Page[RestaurantSummary], error)
	Categories(ctx context.Context, keyword string, page int) (Page[CategoryView], error)
	AllCategories(ctx context.Context) ([]CategoryView, error)
	Holidays(ctx context.Context) ([]HolidayView, error)
}

type restaurantQueriesImpl struct {
	restaurants RestaurantReadStore
	categories  CategoryReadStore
	favorites   FavoriteReadStore
}

func NewRestaurantQueries(restaurants RestaurantReadStore, categories CategoryReadStore, favorites FavoriteReadStore) RestaurantQueries {
	return &restaurantQueriesImpl{
		restaurants: restaurants,
		categories:  categories,
		favorites:   favorites,
	}
}

func (q *restaurantQueriesImpl) Home(ctx context.Context) (*HomeView, error) {
	rated, err := q.restaurants.Search(ctx, RestaurantFilter{Sort: restaurant.SortRating, Limit: homeSectionSize})
	if err != nil {
		return nil, err
	}
	newest, err := q.restaurants.Search(ctx, RestaurantFilter{Sort: restaurant.SortNewest, Limit: homeSectionSize})
	if err != nil {
		return nil, err
	}
	categories, err := q.AllCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &HomeView{HighlyRated: rated, Newest: newest, Categories: categories}, nil
}

func (q *restaurantQueriesImpl) Search(ctx context.Context, s RestaurantSearch) (Page[RestaurantSummary], error) {
	page := NormalizePage(s.Page)
	f := RestaurantFilter{
		Keyword:    strings.TrimSpace(s.Keyword),
		WideMatch:  true,
		CategoryID: s.CategoryID,
		MaxPrice:   s.MaxPrice,
		Sort:       restaurant.ParseSortKey(string(s.Sort)),
		Limit:      restaurant.ListPageSize,
		Offset:     offset(page, restaurant.ListPageSize),
	}
	return q.page(ctx, f, page)
}

func (q *restaurantQueriesImpl) AdminSearch(ctx context.Context, keyword string, page int) (Page[RestaurantSummary], error) {
	page = NormalizePage(page)
	f := RestaurantFilter{
		Keyword: strings.TrimSpace(keyword),
		Sort:    restaurant.SortNewest,
		Limit:   DefaultPerPage,
		Offset:  offset(page, DefaultPerPage),
	}
	return q.page(ctx, f, page)
}

func (q *restaurantQueriesImpl) page(ctx context.Context, f RestaurantFilter, page int) (Page[RestaurantSummary], error) {
	items, err := q.restaurants.Search(ctx, f)
	if err != nil {
		return Page[RestaurantSummary]{}, err
	}
	total, err := q.restaurants.Count(ctx, f)
	if err != nil {
		return Page[RestaurantSummary]{}, err
	}
	return NewPage(items, total, page, int(f.Limit)), nil
}

func (q *restaurantQueriesImpl) Summary(ctx context.Context, id int64) (*RestaurantSummary, error) {
	summary, err := q.restaurants.FindSummary(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRestaurantNotFound
		}
		return nil, err
	}
	return summary, nil
}

func (q *restaurantQueriesImpl) Detail(ctx context.Context, p access.Principal, id int64) (*RestaurantDetail, error) {
	summary, err := q.Summary(ctx, id)
	if err != nil {
		return nil, err
	}
	holidays, err := q.restaurants.Holidays(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &RestaurantDetail{RestaurantSummary: *summary, RegularHolidays: holidays}

	if memberID, ok := access.MemberID(p); ok {
		fav, err := q.favorites.IsFavorite(ctx, memberID, id)
		if err != nil {
			return nil, err
		}
		detail.IsFavorite = fav
	}
	return detail, nil
}

func (q *restaurantQueriesImpl) Categories(ctx context.Context, keyword string, page int) (Page[CategoryView], error) {
	page = NormalizePage(page)
	keyword = strings.TrimSpace(keyword)
	items, err := q.categories.List(ctx, keyword, DefaultPerPage, offset(page, DefaultPerPage))
	if err != nil {
		return Page[CategoryView]{}, err
	}
	total, err := q.categories.Count(ctx, keyword)
	if err != nil {
		return Page[CategoryView]{}, err
	}
	return NewPage(items, total, page, DefaultPerPage), nil
}

func (q *restaurantQueriesImpl) AllCategories(ctx context.Context) ([]CategoryView, error) {
	return q.categories.List(ctx, "", allCategoriesLimit, 0)
}

func (q *restaurantQueriesImpl) Holidays(ctx context.Context) ([]HolidayView, error) {
	return q.restaurants.AllHolidays(ctx)
}
