package bootstrap

import (
	"time"

	"nagoyameshi/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the zone reservation dates and times are read in.
func NewLocation(cfg config.Config) *time.Location {
	return cfg.App.Location()
}
