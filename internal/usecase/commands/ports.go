package commands

import (
	"context"

	"nagoyameshi/internal/domain/subscription"
)

// Provider event types the webhook reacts to.
const (
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

type BillingCustomer struct {
	// ID is empty when the member has never been billed.
	ID       string
	MemberID int64
	Email    string
	Name     string
}

type BillingSubscription struct {
	ID     string
	Status string
}

type BillingEvent struct {
	Type           string
	SubscriptionID string
	Status         string
}

// BillingGateway is the payment provider seen from the use cases.
type BillingGateway interface {
	EnsureCustomer(ctx context.Context, c BillingCustomer) (string, error)
	// AttachCard attaches the payment method and makes it the customer's default.
	AttachCard(ctx context.Context, customerID, paymentMethodID string) (subscription.Card, error)
	Subscribe(ctx context.Context, customerID, paymentMethodID string) (BillingSubscription, error)
	CancelSubscription(ctx context.Context, providerSubscriptionID string) error
	CreateSetupIntent(ctx context.Context, customerID string) (string, error)
	// ParseEvent verifies the signature before decoding.
	ParseEvent(payload []byte, signature string) (*BillingEvent, error)
}
