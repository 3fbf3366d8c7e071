package bootstrap

import (
	"nagoyameshi/internal/infra/billing"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/usecase/commands"

	"go.uber.org/fx"
)

var BillingModule = fx.Module("billing",
	fx.Provide(
		NewBillingGateway,
	),
)

func NewBillingGateway(cfg config.Config) commands.BillingGateway {
	return billing.NewGateway(cfg.Billing)
}
