package bootstrap

import (
	"log/slog"

	"sarmiento-f5/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig records the settings that differ between deployments. Secrets
// are left out.
func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.String("store_driver", cfg.Store.Driver),
		slog.String("booking_timezone", cfg.Booking.Location().String()),
		slog.Duration("payment_delay", cfg.Booking.PaymentDelay),
		slog.Duration("join_delay", cfg.Booking.JoinDelay),
		slog.Duration("publish_delay", cfg.Booking.PublishDelay),
		slog.Bool("rate_limit", cfg.RateLimit.Enabled),
	)
}
