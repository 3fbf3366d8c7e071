//go:build unit

package commands_test

import (
	"context"
	"time"

	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/usecase/shared"
	sharedmock "nagoyameshi/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

// txMocks runs every Within callback against one mocked transaction.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	users         *sharedmock.MockUserRepository
	admins        *sharedmock.MockAdminRepository
	restaurants   *sharedmock.MockRestaurantRepository
	categories    *sharedmock.MockCategoryRepository
	reservations  *sharedmock.MockReservationRepository
	reviews       *sharedmock.MockReviewRepository
	favorites     *sharedmock.MockFavoriteRepository
	subscriptions *sharedmock.MockSubscriptionRepository
	site          *sharedmock.MockSiteRepository
	clock         *clock.MockClock
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		admins:        sharedmock.NewMockAdminRepository(ctrl),
		restaurants:   sharedmock.NewMockRestaurantRepository(ctrl),
		categories:    sharedmock.NewMockCategoryRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		reviews:       sharedmock.NewMockReviewRepository(ctrl),
		favorites:     sharedmock.NewMockFavoriteRepository(ctrl),
		subscriptions: sharedmock.NewMockSubscriptionRepository(ctrl),
		site:          sharedmock.NewMockSiteRepository(ctrl),
		clock:         clock.NewMockClock(fixedNow),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Admins().Return(m.admins).AnyTimes()
	m.tx.EXPECT().Restaurants().Return(m.restaurants).AnyTimes()
	m.tx.EXPECT().Categories().Return(m.categories).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()
	m.tx.EXPECT().Favorites().Return(m.favorites).AnyTimes()
	m.tx.EXPECT().Subscriptions().Return(m.subscriptions).AnyTimes()
	m.tx.EXPECT().Site().Return(m.site).AnyTimes()
	return m
}
