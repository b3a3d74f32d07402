package commands

import (
	"context"
	"time"

	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/domain/slot"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/pkg/metrics"
	"sarmiento-f5/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

var (
	ErrIncompleteFields    = errs.New("incomplete fields")
	ErrReservationNotFound = errs.New("pending reservation not found")
	ErrInvalidPayment      = errs.New("invalid payment parameters")
	ErrInvalidSlot         = errs.New("invalid slot or court")
)

type BookingRequest struct {
	Nombre   string
	Telefono string
	Email    string
	Fecha    string
	Hora     string
	Cancha   int
}

type PaymentParams struct {
	Monto    string
	Concepto string
	Email    string
}

type CheckoutResult struct {
	Reservation *reservation.Reservation
	Payment     reservation.PaymentRequest
}

type ReservationCommands interface {
	Quote(ctx context.Context, req BookingRequest) (*reservation.Reservation, error)
	Checkout(ctx context.Context, req BookingRequest) (*CheckoutResult, error)
	ConfirmPayment(ctx context.Context, params PaymentParams) (*reservation.Reservation, error)
	CancelPayment(ctx context.Context) error
}

type reservationCommandsImpl struct {
	store        ReservationStore
	services     *reservation.Services
	calendar     shared.Calendar
	clock        clock.Clock
	paymentDelay time.Duration
}

func NewReservationCommands(
	store ReservationStore,
	pricing reservation.PriceCalculator,
	clk clock.Clock,
	calendar shared.Calendar,
	paymentDelay time.Duration,
) ReservationCommands {
	return &reservationCommandsImpl{
		store: store,
		services: &reservation.Services{
			Clock:           clk,
			PriceCalculator: pricing,
		},
		calendar:     calendar,
		clock:        clk,
		paymentDelay: paymentDelay,
	}
}

// Quote prices the booking without storing anything.
func (uc *reservationCommandsImpl) Quote(ctx context.Context, req BookingRequest) (*reservation.Reservation, error) {
	res, err := uc.build(req)
	if err != nil {
		return nil, err
	}
	metrics.ReservationEvents.WithLabelValues("quoted").Inc()
	return res, nil
}

// Checkout stores the booking as the single pending reservation, replacing
// any earlier one, and returns where to pay the seña.
func (uc *reservationCommandsImpl) Checkout(ctx context.Context, req BookingRequest) (*CheckoutResult, error) {
	res, err := uc.build(req)
	if err != nil {
		return nil, err
	}
	if err := uc.store.SavePending(ctx, res); err != nil {
		return nil, shared.StoreErr(err)
	}
	metrics.ReservationEvents.WithLabelValues("checked_out").Inc()
	return &CheckoutResult{Reservation: res, Payment: res.PaymentRequest()}, nil
}

// ConfirmPayment simulates the payment provider: after the fixed delay the
// pending reservation is marked paid, appended to history and cleared.
func (uc *reservationCommandsImpl) ConfirmPayment(ctx context.Context, params PaymentParams) (*reservation.Reservation, error) {
	if _, err := reservation.ParsePaymentRequest(params.Monto, params.Concepto, params.Email); err != nil {
		return nil, errs.Mark(err, ErrInvalidPayment)
	}

	if err := uc.clock.Sleep(ctx, uc.paymentDelay); err != nil {
		return nil, err
	}

	res, err := uc.store.Pending(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	if res == nil {
		metrics.ReservationEvents.WithLabelValues("payment_missing").Inc()
		return nil, ErrReservationNotFound
	}

	if err := res.MarkPaid(); err != nil {
		metrics.ReservationEvents.WithLabelValues("payment_missing").Inc()
		return nil, errs.Mark(err, ErrReservationNotFound)
	}
	if err := uc.store.AppendHistory(ctx, res); err != nil {
		return nil, shared.StoreErr(err)
	}
	if err := uc.store.DeletePending(ctx); err != nil {
		return nil, shared.StoreErr(err)
	}

	metrics.ReservationEvents.WithLabelValues("paid").Inc()
	return res, nil
}

// CancelPayment drops the pending reservation. Nothing is written to history.
func (uc *reservationCommandsImpl) CancelPayment(ctx context.Context) error {
	if err := uc.store.DeletePending(ctx); err != nil {
		return shared.StoreErr(err)
	}
	metrics.ReservationEvents.WithLabelValues("cancelled").Inc()
	return nil
}

func (uc *reservationCommandsImpl) build(req BookingRequest) (*reservation.Reservation, error) {
	contact, err := reservation.NewContact(req.Nombre, req.Telefono, req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrIncompleteFields)
	}
	day, err := uc.calendar.ResolveDay(req.Fecha)
	if err != nil {
		return nil, err
	}
	ts, err := slot.Find(req.Hora)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}
	court, err := slot.NewCourt(req.Cancha)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}
	return reservation.NewReservation(uc.services, contact, day, ts, court)
}
