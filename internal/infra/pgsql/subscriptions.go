package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const subscriptionColumns = `id, user_id, customer_id, provider_subscription_id, status, payment_method_id, card_brand, card_last4,
    canceled_at, created_at, updated_at`

func scanSubscription(row interface{ Scan(...any) error }) (Subscription, error) {
	var i Subscription
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CustomerID,
		&i.ProviderSubscriptionID,
		&i.Status,
		&i.PaymentMethodID,
		&i.CardBrand,
		&i.CardLast4,
		&i.CanceledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getSubscriptionByUserID = `-- name: GetSubscriptionByUserID :one
SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE user_id = $1`

func (q *Queries) GetSubscriptionByUserID(ctx context.Context, db DBTX, userID int64) (Subscription, error) {
	return scanSubscription(db.QueryRow(ctx, getSubscriptionByUserID, userID))
}

const getSubscriptionByProviderID = `-- name: GetSubscriptionByProviderID :one
SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE provider_subscription_id = $1`

func (q *Queries) GetSubscriptionByProviderID(ctx context.Context, db DBTX, providerSubscriptionID string) (Subscription, error) {
	return scanSubscription(db.QueryRow(ctx, getSubscriptionByProviderID, providerSubscriptionID))
}

const getSubscriptionStatus = `-- name: GetSubscriptionStatus :one
SELECT status FROM subscriptions WHERE user_id = $1
`

func (q *Queries) GetSubscriptionStatus(ctx context.Context, db DBTX, userID int64) (string, error) {
	var status string
	err := db.QueryRow(ctx, getSubscriptionStatus, userID).Scan(&status)
	return status, err
}

const upsertSubscription = `-- name: UpsertSubscription :one
INSERT INTO subscriptions (user_id, customer_id, provider_subscription_id, status, payment_method_id, card_brand,
    card_last4, canceled_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (user_id) DO UPDATE SET
    customer_id = EXCLUDED.customer_id,
    provider_subscription_id = EXCLUDED.provider_subscription_id,
    status = EXCLUDED.status,
    payment_method_id = EXCLUDED.payment_method_id,
    card_brand = EXCLUDED.card_brand,
    card_last4 = EXCLUDED.card_last4,
    canceled_at = EXCLUDED.canceled_at,
    updated_at = EXCLUDED.updated_at
RETURNING id
`

type UpsertSubscriptionParams struct {
	UserID                 int64
	CustomerID             string
	ProviderSubscriptionID string
	Status                 string
	PaymentMethodID        string
	CardBrand              string
	CardLast4              string
	CanceledAt             pgtype.Timestamptz
	CreatedAt              pgtype.Timestamptz
	UpdatedAt              pgtype.Timestamptz
}

func (q *Queries) UpsertSubscription(ctx context.Context, db DBTX, arg UpsertSubscriptionParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, upsertSubscription,
		arg.UserID,
		arg.CustomerID,
		arg.ProviderSubscriptionID,
		arg.Status,
		arg.PaymentMethodID,
		arg.CardBrand,
		arg.CardLast4,
		arg.CanceledAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	).Scan(&id)
	return id, err
}
