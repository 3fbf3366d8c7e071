//go:build unit

package restaurant_test

import (
	"testing"
	"time"

	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RestaurantBuilder)
	field  string
	errIs  error
}

func TestRestaurant(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRestaurantBuilder().With(func(b *builder.RestaurantBuilder) {
			b.CategoryIDs = []int64{2, 2, 5}
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, []int64{2, 5}, actual.CategoryIDs())
		assert.Equal(t, "11:00", actual.Hours().Opening())
		assert.Equal(t, 1000, actual.Price().Lowest())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty name", mutate: func(b *builder.RestaurantBuilder) { b.Name = "" }, field: "name", errIs: restaurant.ErrEmptyName},
			{name: "empty description", mutate: func(b *builder.RestaurantBuilder) { b.Description = " " }, field: "description", errIs: restaurant.ErrEmptyDescription},
			{name: "negative price", mutate: func(b *builder.RestaurantBuilder) { b.LowestPrice = -1 }, field: "lowest_price", errIs: restaurant.ErrInvalidPrice},
			{name: "inverted prices", mutate: func(b *builder.RestaurantBuilder) { b.LowestPrice = 5000; b.HighestPrice = 3000 }, field: "lowest_price", errIs: restaurant.ErrPriceRange},
			{name: "equal prices", mutate: func(b *builder.RestaurantBuilder) { b.LowestPrice = 3000; b.HighestPrice = 3000 }},
			{name: "postal code", mutate: func(b *builder.RestaurantBuilder) { b.PostalCode = "123" }, field: "postal_code", errIs: restaurant.ErrInvalidPostalCode},
			{name: "closing before opening", mutate: func(b *builder.RestaurantBuilder) { b.OpeningTime = "22:00"; b.ClosingTime = "11:00" }, field: "opening_time", errIs: restaurant.ErrHoursOrder},
			{name: "malformed hours", mutate: func(b *builder.RestaurantBuilder) { b.OpeningTime = "11" }, field: "opening_time", errIs: restaurant.ErrInvalidBusinessHours},
			{name: "negative capacity", mutate: func(b *builder.RestaurantBuilder) { b.SeatingCapacity = -3 }, field: "seating_capacity", errIs: restaurant.ErrInvalidCapacity},
			{name: "four categories", mutate: func(b *builder.RestaurantBuilder) { b.CategoryIDs = []int64{1, 2, 3, 4} }, field: "category_ids", errIs: restaurant.ErrTooManyCategories},
		})
	})

	t.Run("update replaces associations", func(t *testing.T) {
		r := builder.NewRestaurantBuilder().WithID(4).BuildReconstructed()
		attrs := builder.NewRestaurantBuilder().With(func(b *builder.RestaurantBuilder) {
			b.CategoryIDs = []int64{9}
			b.HolidayIDs = nil
		}).BuildAttributes()

		require.NoError(t, r.Update(attrs, time.Now()))
		assert.Equal(t, []int64{9}, r.CategoryIDs())
		assert.Empty(t, r.HolidayIDs())
		assert.Equal(t, int64(4), r.ID())
	})
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, restaurant.SortRating, restaurant.ParseSortKey("rating desc"))
	assert.Equal(t, restaurant.SortNewest, restaurant.ParseSortKey("name; drop table"))
	assert.Equal(t, restaurant.SortNewest, restaurant.ParseSortKey(""))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := builder.NewRestaurantBuilder().With(tc.mutate).BuildDomain()

			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Contains(t, errs.ValidationDetail(err), tc.field)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
