package components

import (
	"sarmiento-f5/internal/handler"
	"sarmiento-f5/internal/handler/api"
	"sarmiento-f5/internal/handler/middleware"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewWaitlistHandler,
		api.NewRivalsHandler,
		api.NewContactHandler,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, clk)
}
