package restaurant

// SortKey selects exactly one listing order.
type SortKey string

const (
	SortNewest      SortKey = "created_at desc"
	SortLowestPrice SortKey = "lowest_price asc"
	SortRating      SortKey = "rating desc"
	SortPopular     SortKey = "popular desc"
	DefaultSort             = SortNewest
	ListPageSize            = 15
)

// ParseSortKey falls back to the default for unknown input.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortNewest, SortLowestPrice, SortRating, SortPopular:
		return SortKey(s)
	default:
		return DefaultSort
	}
}

// RegularHoliday is reference data seeded with the schema.
type RegularHoliday struct {
	ID       int64
	Day      string
	DayIndex *int
}
