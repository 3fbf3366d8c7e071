package queries

const (
	DefaultPerPage = 15
	MaxPage        = 10000
)

// Page is one numbered page of a larger ordered result.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

func NewPage[T any](items []T, total int64, page, perPage int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: page, PerPage: perPage}
}

func (p Page[T]) LastPage() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// NormalizePage clamps a requested page number into [1, MaxPage].
func NormalizePage(page int) int {
	switch {
	case page < 1:
		return 1
	case page > MaxPage:
		return MaxPage
	default:
		return page
	}
}

func offset(page, perPage int) int32 {
	return int32((NormalizePage(page) - 1) * perPage)
}
