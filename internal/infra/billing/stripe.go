package billing

import (
	"context"
	"encoding/json"
	"strconv"

	"nagoyameshi/internal/domain/subscription"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

type StripeGateway struct {
	api           *client.API
	priceID       string
	webhookSecret string
}

func NewStripeGateway(cfg config.BillingConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)
	return &StripeGateway{
		api:           api,
		priceID:       cfg.StripePriceID,
		webhookSecret: cfg.StripeWebhookSecret,
	}
}

// idempotent attaches ctx and a fresh idempotency key to a write.
func idempotent(ctx context.Context, p *stripe.Params) {
	p.Context = ctx
	p.SetIdempotencyKey(uuid.NewString())
}

func (g *StripeGateway) EnsureCustomer(ctx context.Context, c commands.BillingCustomer) (string, error) {
	if c.ID != "" {
		return c.ID, nil
	}
	params := &stripe.CustomerParams{
		Email: stripe.String(c.Email),
		Name:  stripe.String(c.Name),
	}
	params.AddMetadata("member_id", strconv.FormatInt(c.MemberID, 10))
	idempotent(ctx, &params.Params)

	cus, err := g.api.Customers.New(params)
	if err != nil {
		return "", errs.Wrap(err, "stripe: create customer")
	}
	return cus.ID, nil
}

func (g *StripeGateway) AttachCard(ctx context.Context, customerID, paymentMethodID string) (subscription.Card, error) {
	attach := &stripe.PaymentMethodAttachParams{Customer: stripe.String(customerID)}
	idempotent(ctx, &attach.Params)
	pm, err := g.api.PaymentMethods.Attach(paymentMethodID, attach)
	if err != nil {
		return subscription.Card{}, errs.Wrap(err, "stripe: attach payment method")
	}

	update := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(pm.ID),
		},
	}
	idempotent(ctx, &update.Params)
	if _, err := g.api.Customers.Update(customerID, update); err != nil {
		return subscription.Card{}, errs.Wrap(err, "stripe: set default payment method")
	}

	card := subscription.Card{PaymentMethodID: pm.ID}
	if pm.Card != nil {
		card.Brand = string(pm.Card.Brand)
		card.Last4 = pm.Card.Last4
	}
	return card, nil
}

func (g *StripeGateway) Subscribe(ctx context.Context, customerID, paymentMethodID string) (commands.BillingSubscription, error) {
	params := &stripe.SubscriptionParams{
		Customer:             stripe.String(customerID),
		DefaultPaymentMethod: stripe.String(paymentMethodID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(g.priceID)},
		},
	}
	idempotent(ctx, &params.Params)

	sub, err := g.api.Subscriptions.New(params)
	if err != nil {
		return commands.BillingSubscription{}, errs.Wrap(err, "stripe: create subscription")
	}
	return commands.BillingSubscription{ID: sub.ID, Status: string(sub.Status)}, nil
}

func (g *StripeGateway) CancelSubscription(ctx context.Context, providerSubscriptionID string) error {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx
	if _, err := g.api.Subscriptions.Cancel(providerSubscriptionID, params); err != nil {
		return errs.Wrap(err, "stripe: cancel subscription")
	}
	return nil
}

func (g *StripeGateway) CreateSetupIntent(ctx context.Context, customerID string) (string, error) {
	params := &stripe.SetupIntentParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	}
	idempotent(ctx, &params.Params)

	si, err := g.api.SetupIntents.New(params)
	if err != nil {
		return "", errs.Wrap(err, "stripe: create setup intent")
	}
	return si.ClientSecret, nil
}

func (g *StripeGateway) ParseEvent(payload []byte, signature string) (*commands.BillingEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "stripe: verify webhook")
	}

	out := &commands.BillingEvent{Type: string(event.Type)}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return out, nil
	}
	switch out.Type {
	case commands.EventSubscriptionUpdated, commands.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, errs.Wrap(err, "stripe: decode subscription event")
		}
		out.SubscriptionID = sub.ID
		out.Status = string(sub.Status)
	}
	return out, nil
}
