package billing

import (
	"log/slog"

	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/usecase/commands"
)

// NewGateway picks Stripe when a secret key is configured.
func NewGateway(cfg config.BillingConfig) commands.BillingGateway {
	if cfg.StripeSecretKey == "" {
		slog.Warn("STRIPE_SECRET_KEY未設定のためローカル決済ゲートウェイを使用します")
		return NewLocalGateway(cfg.StripeWebhookSecret)
	}
	return NewStripeGateway(cfg)
}
