package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"nagoyameshi/internal/domain/subscription"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidSignature = errs.New("billing: invalid webhook signature")

// LocalGateway approves everything. It backs development and tests when no provider key is configured.
type LocalGateway struct {
	secret []byte
}

func NewLocalGateway(webhookSecret string) *LocalGateway {
	return &LocalGateway{secret: []byte(webhookSecret)}
}

func (g *LocalGateway) EnsureCustomer(_ context.Context, c commands.BillingCustomer) (string, error) {
	if c.ID != "" {
		return c.ID, nil
	}
	return "cus_local_" + uuid.NewString(), nil
}

func (g *LocalGateway) AttachCard(_ context.Context, _ string, paymentMethodID string) (subscription.Card, error) {
	last4 := paymentMethodID
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return subscription.Card{PaymentMethodID: paymentMethodID, Brand: "local", Last4: last4}, nil
}

func (g *LocalGateway) Subscribe(_ context.Context, _, _ string) (commands.BillingSubscription, error) {
	return commands.BillingSubscription{ID: "sub_local_" + uuid.NewString(), Status: "active"}, nil
}

func (g *LocalGateway) CancelSubscription(_ context.Context, _ string) error {
	return nil
}

func (g *LocalGateway) CreateSetupIntent(_ context.Context, _ string) (string, error) {
	return "seti_local_" + strings.ReplaceAll(uuid.NewString(), "-", "") + "_secret", nil
}

type localEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"object"`
	} `json:"data"`
}

// ParseEvent accepts provider-shaped JSON signed with hex(HMAC-SHA256(secret, payload)).
func (g *LocalGateway) ParseEvent(payload []byte, signature string) (*commands.BillingEvent, error) {
	if len(g.secret) > 0 && !hmac.Equal([]byte(Sign(g.secret, payload)), []byte(signature)) {
		return nil, ErrInvalidSignature
	}
	var ev localEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, errs.Wrap(err, "billing: decode event")
	}
	return &commands.BillingEvent{
		Type:           ev.Type,
		SubscriptionID: ev.Data.Object.ID,
		Status:         ev.Data.Object.Status,
	}, nil
}

func Sign(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
