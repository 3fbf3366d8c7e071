package subscription

import (
	"errors"
	"time"

	"nagoyameshi/internal/domain/access"
)

var (
	ErrAlreadyCanceled = errors.New("subscription is already canceled")
	ErrInvalidStatus   = errors.New("invalid subscription status")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
)

// ParseProviderStatus maps billing provider states onto ours. Anything not currently paying is canceled.
func ParseProviderStatus(s string) Status {
	switch s {
	case "active", "trialing", "past_due":
		return StatusActive
	default:
		return StatusCanceled
	}
}

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusCanceled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Card is the display-safe summary of the payment method on file.
type Card struct {
	PaymentMethodID string
	Brand           string
	Last4           string
}

type Subscription struct {
	id                     int64
	userID                 int64
	customerID             string
	providerSubscriptionID string
	status                 Status
	card                   Card
	canceledAt             *time.Time
	createdAt              time.Time
	updatedAt              time.Time
}

func NewSubscription(userID int64, customerID, providerSubscriptionID string, card Card, now time.Time) *Subscription {
	return &Subscription{
		userID:                 userID,
		customerID:             customerID,
		providerSubscriptionID: providerSubscriptionID,
		status:                 StatusActive,
		card:                   card,
		createdAt:              now,
		updatedAt:              now,
	}
}

func ReconstructSubscription(id, userID int64, customerID, providerSubscriptionID string, status Status, card Card, canceledAt *time.Time, createdAt, updatedAt time.Time) *Subscription {
	return &Subscription{
		id:                     id,
		userID:                 userID,
		customerID:             customerID,
		providerSubscriptionID: providerSubscriptionID,
		status:                 status,
		card:                   card,
		canceledAt:             canceledAt,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}
}

// Resubscribe reactivates a canceled record for a returning member.
func (s *Subscription) Resubscribe(customerID, providerSubscriptionID string, card Card, now time.Time) {
	s.customerID = customerID
	s.providerSubscriptionID = providerSubscriptionID
	s.card = card
	s.status = StatusActive
	s.canceledAt = nil
	s.updatedAt = now
}

func (s *Subscription) ChangeCard(card Card, now time.Time) {
	s.card = card
	s.updatedAt = now
}

func (s *Subscription) Cancel(now time.Time) error {
	if s.status == StatusCanceled {
		return ErrAlreadyCanceled
	}
	s.status = StatusCanceled
	s.canceledAt = &now
	s.updatedAt = now
	return nil
}

// Sync applies a provider-reported status.
func (s *Subscription) Sync(status Status, now time.Time) {
	if s.status == status {
		return
	}
	s.status = status
	if status == StatusCanceled {
		s.canceledAt = &now
	} else {
		s.canceledAt = nil
	}
	s.updatedAt = now
}

func (s *Subscription) Entitlement() access.Entitlement {
	return EntitlementOf(s)
}

// EntitlementOf treats a missing record as free.
func EntitlementOf(s *Subscription) access.Entitlement {
	if s != nil && s.status == StatusActive {
		return access.Premium
	}
	return access.Free
}

func (s *Subscription) ID() int64                      { return s.id }
func (s *Subscription) UserID() int64                  { return s.userID }
func (s *Subscription) OwnerID() int64                 { return s.userID }
func (s *Subscription) CustomerID() string             { return s.customerID }
func (s *Subscription) ProviderSubscriptionID() string { return s.providerSubscriptionID }
func (s *Subscription) Status() Status                 { return s.status }
func (s *Subscription) Card() Card                     { return s.card }
func (s *Subscription) CanceledAt() *time.Time         { return s.canceledAt }
func (s *Subscription) CreatedAt() time.Time           { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time           { return s.updatedAt }
