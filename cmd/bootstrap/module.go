package bootstrap

import (
	"nagoyameshi/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the whole application minus the listening server.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	SessionModule,
	BillingModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	HTTPModule,
)
