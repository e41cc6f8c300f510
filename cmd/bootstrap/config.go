package bootstrap

import (
	"stablebook/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.LoyaltyConfig { return cfg.Loyalty },
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
	),
)
