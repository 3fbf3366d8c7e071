package commands

import (
	"context"
	"log/slog"
	"strings"

	"nagoyameshi/internal/domain/subscription"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/shared"
)

type SubscriptionCommands interface {
	// SetupIntent returns the client secret the card form confirms against.
	SetupIntent(ctx context.Context, memberID int64) (string, error)
	Subscribe(ctx context.Context, memberID int64, paymentMethodID string) error
	UpdatePaymentMethod(ctx context.Context, memberID int64, paymentMethodID string) error
	Cancel(ctx context.Context, memberID int64) error
	SyncFromProvider(ctx context.Context, payload []byte, signature string) error
}

type subscriptionCommandsImpl struct {
	uow     shared.UnitOfWork
	billing BillingGateway
	clock   clock.Clock
}

func NewSubscriptionCommands(uow shared.UnitOfWork, billing BillingGateway, clk clock.Clock) SubscriptionCommands {
	return &subscriptionCommandsImpl{
		uow:     uow,
		billing: billing,
		clock:   clk,
	}
}

func (uc *subscriptionCommandsImpl) SetupIntent(ctx context.Context, memberID int64) (string, error) {
	customer, _, err := uc.loadCustomer(ctx, memberID)
	if err != nil {
		return "", err
	}
	secret, err := uc.billing.CreateSetupIntent(ctx, customer.ID)
	if err != nil {
		return "", errs.Mark(err, errs.ErrBillingFailed)
	}
	return secret, nil
}

// Subscribe talks to the provider first and persists only after it succeeded.
func (uc *subscriptionCommandsImpl) Subscribe(ctx context.Context, memberID int64, paymentMethodID string) error {
	paymentMethodID = strings.TrimSpace(paymentMethodID)
	if paymentMethodID == "" {
		return errs.Invalid("payment_method_id", ErrPaymentMethodMissing)
	}

	customer, existing, err := uc.loadCustomer(ctx, memberID)
	if err != nil {
		return err
	}

	customerID, err := uc.billing.EnsureCustomer(ctx, customer)
	if err != nil {
		return errs.Mark(err, errs.ErrBillingFailed)
	}
	card, err := uc.billing.AttachCard(ctx, customerID, paymentMethodID)
	if err != nil {
		return errs.Mark(err, errs.ErrBillingFailed)
	}
	remote, err := uc.billing.Subscribe(ctx, customerID, paymentMethodID)
	if err != nil {
		return errs.Mark(err, errs.ErrBillingFailed)
	}

	now := uc.clock.Now()
	sub := existing
	if sub == nil {
		sub = subscription.NewSubscription(memberID, customerID, remote.ID, card, now)
	} else {
		sub.Resubscribe(customerID, remote.ID, card, now)
	}
	sub.Sync(subscription.ParseProviderStatus(remote.Status), now)

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Subscriptions().Save(ctx, sub)
		return err
	})
}

func (uc *subscriptionCommandsImpl) UpdatePaymentMethod(ctx context.Context, memberID int64, paymentMethodID string) error {
	paymentMethodID = strings.TrimSpace(paymentMethodID)
	if paymentMethodID == "" {
		return errs.Invalid("payment_method_id", ErrPaymentMethodMissing)
	}

	sub, err := uc.current(ctx, memberID)
	if err != nil {
		return err
	}
	card, err := uc.billing.AttachCard(ctx, sub.CustomerID(), paymentMethodID)
	if err != nil {
		return errs.Mark(err, errs.ErrBillingFailed)
	}
	sub.ChangeCard(card, uc.clock.Now())

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Subscriptions().Save(ctx, sub)
		return err
	})
}

func (uc *subscriptionCommandsImpl) Cancel(ctx context.Context, memberID int64) error {
	sub, err := uc.current(ctx, memberID)
	if err != nil {
		return err
	}
	if err := sub.Cancel(uc.clock.Now()); err != nil {
		return err
	}
	if err := uc.billing.CancelSubscription(ctx, sub.ProviderSubscriptionID()); err != nil {
		return errs.Mark(err, errs.ErrBillingFailed)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Subscriptions().Save(ctx, sub)
		return err
	})
}

// SyncFromProvider applies subscription status changes pushed by the provider.
// Events for unknown subscriptions and unrelated event types are acknowledged and ignored.
func (uc *subscriptionCommandsImpl) SyncFromProvider(ctx context.Context, payload []byte, signature string) error {
	event, err := uc.billing.ParseEvent(payload, signature)
	if err != nil {
		return errs.Mark(err, ErrInvalidWebhook)
	}

	var status subscription.Status
	switch event.Type {
	case EventSubscriptionDeleted:
		status = subscription.StatusCanceled
	case EventSubscriptionUpdated:
		status = subscription.ParseProviderStatus(event.Status)
	default:
		slog.Debug("ignoring billing event", "type", event.Type)
		return nil
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sub, err := tx.Subscriptions().FindByProviderID(ctx, event.SubscriptionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Warn("billing event for unknown subscription", "subscription_id", event.SubscriptionID)
				return nil
			}
			return err
		}
		sub.Sync(status, uc.clock.Now())
		_, err = tx.Subscriptions().Save(ctx, sub)
		return err
	})
}

func (uc *subscriptionCommandsImpl) current(ctx context.Context, memberID int64) (*subscription.Subscription, error) {
	var sub *subscription.Subscription
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Subscriptions().FindByUserID(ctx, memberID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrSubscriptionMissing
			}
			return err
		}
		sub = found
		return nil
	})
	return sub, err
}

// loadCustomer returns the member's billing identity and their subscription record, if any.
func (uc *subscriptionCommandsImpl) loadCustomer(ctx context.Context, memberID int64) (BillingCustomer, *subscription.Subscription, error) {
	var (
		customer BillingCustomer
		existing *subscription.Subscription
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, memberID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrUserNotFound
			}
			return err
		}
		customer = BillingCustomer{MemberID: u.ID(), Email: u.Email().Value(), Name: u.Name()}

		sub, err := tx.Subscriptions().FindByUserID(ctx, memberID)
		switch {
		case err == nil:
			existing = sub
			customer.ID = sub.CustomerID()
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}
		return nil
	})
	return customer, existing, err
}
