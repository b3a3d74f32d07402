package components

import (
	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/domain/rivals"
	"sarmiento-f5/internal/infra/receipt"
	"sarmiento-f5/internal/infra/repository"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/config"
	"sarmiento-f5/internal/usecase/commands"
	"sarmiento-f5/internal/usecase/queries"
	"sarmiento-f5/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Reservation
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationStore)),
			fx.As(new(queries.ReservationReadStore)),
		),
		// Waitlist
		fx.Annotate(
			repository.NewWaitlistRepository,
			fx.As(new(commands.WaitlistStore)),
			fx.As(new(queries.WaitlistReadStore)),
		),
		// Rivals
		fx.Annotate(
			repository.NewListingRepository,
			fx.As(new(commands.ListingStore)),
			fx.As(new(queries.ListingReadStore)),
		),
		// Receipt
		fx.Annotate(
			NewReceiptPrinter,
			fx.As(new(queries.ReceiptRenderer)),
		),
		// Domain services
		fx.Annotate(
			reservation.NewDefaultPriceCalculator,
			fx.As(new(reservation.PriceCalculator)),
		),
		fx.Annotate(
			NewIDGenerator,
			fx.As(new(rivals.IDGenerator)),
		),
		clock.NewRealClock,
		NewCalendar,
	),
)

func NewReceiptPrinter(cfg config.Config) *receipt.Printer {
	return receipt.NewPrinter(cfg.Receipt.Secret, cfg.Booking.Location())
}

func NewIDGenerator() rivals.RandomIDs {
	return rivals.RandomIDs{}
}

func NewCalendar(clk clock.Clock, cfg config.Config) shared.Calendar {
	return shared.NewCalendar(clk, cfg.Booking.Location())
}
