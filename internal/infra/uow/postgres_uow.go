package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/infra/repository"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
	errRetriesExhausted  = errs.New("transaction retries exhausted")
)

// RetryPolicy bounds how often a transaction that lost a serialization race is replayed.
type RetryPolicy struct {
	Attempts int
	Base     time.Duration
}

var DefaultRetryPolicy = RetryPolicy{Attempts: 4, Base: 50 * time.Millisecond}

// wait is the exponential delay after the n-th failed attempt plus up to 25% jitter.
func (p RetryPolicy) wait(n int) time.Duration {
	d := p.Base << n
	return d + time.Duration(rand.Int64N(int64(d)/4+1))
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *pgsql.Queries
	clock  clock.Clock
	policy RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgsql.Queries, clk clock.Clock) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, clock: clk, policy: DefaultRetryPolicy}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for n := 0; n < u.policy.Attempts; n++ {
		if n > 0 {
			d := u.policy.wait(n - 1)
			slog.Warn("replaying transaction", "attempt", n+1, "wait_ms", d.Milliseconds(), "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d):
			}
		}
		err = u.attempt(ctx, fn)
		if err == nil || !retryable(err) {
			return err
		}
	}
	slog.Error("transaction gave up", "attempts", u.policy.Attempts, "error", err)
	return errs.Mark(err, errRetriesExhausted)
}

// attempt runs fn in one read-committed transaction and always ends it.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr)
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// retryable matches serialization failures and deadlocks.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

type pgTx struct {
	dbtx pgsql.DBTX
	uow  *PostgresUoW

	userRepo         shared.UserRepository
	adminRepo        shared.AdminRepository
	restaurantRepo   shared.RestaurantRepository
	categoryRepo     shared.CategoryRepository
	reservationRepo  shared.ReservationRepository
	reviewRepo       shared.ReviewRepository
	favoriteRepo     shared.FavoriteRepository
	subscriptionRepo shared.SubscriptionRepository
	siteRepo         shared.SiteRepository
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Admins() shared.AdminRepository {
	if t.adminRepo == nil {
		t.adminRepo = repository.NewAdminRepository(t.uow.q, t.dbtx)
	}
	return t.adminRepo
}

func (t *pgTx) Restaurants() shared.RestaurantRepository {
	if t.restaurantRepo == nil {
		t.restaurantRepo = repository.NewRestaurantRepository(t.uow.q, t.dbtx)
	}
	return t.restaurantRepo
}

func (t *pgTx) Categories() shared.CategoryRepository {
	if t.categoryRepo == nil {
		t.categoryRepo = repository.NewCategoryRepository(t.uow.q, t.dbtx, t.uow.clock.Now)
	}
	return t.categoryRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.uow.q, t.dbtx)
	}
	return t.reviewRepo
}

func (t *pgTx) Favorites() shared.FavoriteRepository {
	if t.favoriteRepo == nil {
		t.favoriteRepo = repository.NewFavoriteRepository(t.uow.q, t.dbtx)
	}
	return t.favoriteRepo
}

func (t *pgTx) Subscriptions() shared.SubscriptionRepository {
	if t.subscriptionRepo == nil {
		t.subscriptionRepo = repository.NewSubscriptionRepository(t.uow.q, t.dbtx)
	}
	return t.subscriptionRepo
}

func (t *pgTx) Site() shared.SiteRepository {
	if t.siteRepo == nil {
		t.siteRepo = repository.NewSiteRepository(t.uow.q, t.dbtx, t.uow.clock.Now)
	}
	return t.siteRepo
}
