package components

import (
	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/domain/rivals"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/config"
	"sarmiento-f5/internal/usecase/commands"
	"sarmiento-f5/internal/usecase/queries"
	"sarmiento-f5/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		// Commands
		NewReservationCommands,
		NewWaitlistCommands,
		NewRivalsCommands,
		// Queries
		queries.NewSlotQueries,
		queries.NewReservationQueries,
		NewWaitlistQueries,
		NewRivalsQueries,
		NewContactQueries,
	),
)

func NewReservationCommands(
	store commands.ReservationStore,
	pricing reservation.PriceCalculator,
	clk clock.Clock,
	calendar shared.Calendar,
	cfg config.Config,
) commands.ReservationCommands {
	return commands.NewReservationCommands(store, pricing, clk, calendar, cfg.Booking.PaymentDelay)
}

func NewWaitlistCommands(store commands.WaitlistStore, clk clock.Clock, calendar shared.Calendar, cfg config.Config) commands.WaitlistCommands {
	return commands.NewWaitlistCommands(store, clk, calendar, cfg.Booking.JoinDelay)
}

func NewRivalsCommands(store commands.ListingStore, ids rivals.IDGenerator, clk clock.Clock, cfg config.Config) commands.RivalsCommands {
	return commands.NewRivalsCommands(store, ids, clk, cfg.Booking.PublishDelay)
}

func NewWaitlistQueries(store queries.WaitlistReadStore, cfg config.Config) queries.WaitlistQueries {
	return queries.NewWaitlistQueries(store, cfg.Booking.Location())
}

func NewRivalsQueries(store queries.ListingReadStore, cfg config.Config) queries.RivalsQueries {
	return queries.NewRivalsQueries(store, cfg.Contact.FallbackNumber)
}

func NewContactQueries(cfg config.Config) queries.ContactQueries {
	return queries.NewContactQueries(cfg.Contact)
}
