//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"nagoyameshi/internal/domain/reservation"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	field  string
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("slot is parsed in the configured zone", func(t *testing.T) {
		tokyo := time.FixedZone("Asia/Tokyo", 9*60*60)
		actual, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Date = "2025-04-01"
			b.Time = "18:30"
			b.Location = tokyo
		}).BuildDomain(time.Now())
		require.NoError(t, err)

		assert.True(t, actual.ReservedAt().Equal(time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)))
		assert.Equal(t, 2, actual.PartySize().Value())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "one person", mutate: func(b *builder.ReservationBuilder) { b.NumberOfPeople = 1 }},
			{name: "fifty people", mutate: func(b *builder.ReservationBuilder) { b.NumberOfPeople = 50 }},
			{name: "zero people", mutate: func(b *builder.ReservationBuilder) { b.NumberOfPeople = 0 }, field: "number_of_people", errIs: reservation.ErrInvalidPartySize},
			{name: "fifty one people", mutate: func(b *builder.ReservationBuilder) { b.NumberOfPeople = 51 }, field: "number_of_people", errIs: reservation.ErrInvalidPartySize},
			{name: "date with slashes", mutate: func(b *builder.ReservationBuilder) { b.Date = "2025/04/01" }, field: "reservation_date", errIs: reservation.ErrInvalidDate},
			{name: "impossible date", mutate: func(b *builder.ReservationBuilder) { b.Date = "2025-02-30" }, field: "reservation_date", errIs: reservation.ErrInvalidDate},
			{name: "time with seconds", mutate: func(b *builder.ReservationBuilder) { b.Time = "18:30:00" }, field: "reservation_time", errIs: reservation.ErrInvalidTime},
			{name: "empty time", mutate: func(b *builder.ReservationBuilder) { b.Time = "" }, field: "reservation_time", errIs: reservation.ErrInvalidTime},
		})
	})

	t.Run("owner is the booking member", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithUserID(7).BuildReconstructed()
		assert.Equal(t, int64(7), r.OwnerID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(tc.mutate).BuildDomain(time.Now())

			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, map[string]string{tc.field: tc.errIs.Error()}, errs.ValidationDetail(err))
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
