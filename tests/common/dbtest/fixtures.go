//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const PasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateMember(t *testing.T, db DBLike, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (name, kana, email, password_hash, postal_code, address, phone_number, occupation)
		VALUES ('侍 太郎', 'サムライ タロウ', $1, $2, '1010022', '東京都千代田区神田練塀町300番地', '09012345678', '')
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id`, email, PasswordHash).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateAdmin(t *testing.T, db DBLike, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO admins (email, password_hash) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id`, email, PasswordHash).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateCategory(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET updated_at = now()
		RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateRestaurant(t *testing.T, db DBLike, name string, lowest, highest int, categoryIDs ...int64) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO restaurants (name, description, lowest_price, highest_price, postal_code, address, opening_time, closing_time, seating_capacity)
		VALUES ($1, 'テスト店舗', $2, $3, '4600008', '愛知県名古屋市中区栄3-1-1', '11:00', '22:00', 30)
		RETURNING id`, name, lowest, highest).Scan(&id)
	require.NoError(t, err)

	for _, cid := range categoryIDs {
		_, err := db.Exec(ctx, "INSERT INTO category_restaurant (restaurant_id, category_id) VALUES ($1, $2)", id, cid)
		require.NoError(t, err)
	}
	return id
}

func CreateReview(t *testing.T, db DBLike, userID, restaurantID int64, score int, content string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO reviews (score, content, restaurant_id, user_id) VALUES ($1, $2, $3, $4)
		RETURNING id`, score, content, restaurantID, userID).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateReservation(t *testing.T, db DBLike, userID, restaurantID int64, reservedAt time.Time, people int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (reserved_datetime, number_of_people, restaurant_id, user_id) VALUES ($1, $2, $3, $4)
		RETURNING id`, reservedAt, people, restaurantID, userID).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateActiveSubscription makes userID a premium member.
func CreateActiveSubscription(t *testing.T, db DBLike, userID int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO subscriptions (user_id, customer_id, provider_subscription_id, status, card_brand, card_last4)
		VALUES ($1, $2, $3, 'active', 'visa', '4242')
		ON CONFLICT (user_id) DO UPDATE SET status = 'active', canceled_at = NULL`,
		userID, fmt.Sprintf("cus_test_%d", userID), fmt.Sprintf("sub_test_%d", userID))
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string, where string, args ...any) int {
	t.Helper()

	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

// inserts the single-row site pages the app expects to exist
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO companies (name, postal_code, address, representative, establishment_date, capital, business, number_of_employees)
		SELECT 'NAGOYAMESHI株式会社', '1010022', '東京都千代田区神田練塀町300番地', '侍 太郎', '2015年3月19日', '110,000千円', '飲食店等の情報提供サービス', '8名'
		WHERE NOT EXISTS (SELECT 1 FROM companies);
		INSERT INTO terms (content)
		SELECT 'テスト用利用規約' WHERE NOT EXISTS (SELECT 1 FROM terms);
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except migrations and fixed reference rows, then reseeds
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version', 'regular_holidays')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
