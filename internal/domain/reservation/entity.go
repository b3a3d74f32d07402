package reservation

import (
	"fmt"
	"time"

	"sarmiento-f5/internal/domain/slot"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/fecha"
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

// Reservation is a booking snapshot. It is pending until MarkPaid and is
// identified only by being the single pending one or a history position.
type Reservation struct {
	contact   Contact
	fecha     string
	hora      string
	court     slot.Court
	price     Money
	paid      bool
	createdAt time.Time
}

// NewReservation prices a booking of court at the given slot on date. The
// court must be free in the slot pattern.
func NewReservation(
	services *Services,
	contact Contact,
	date time.Time,
	ts slot.TimeSlot,
	court slot.Court,
) (*Reservation, error) {
	if !ts.CourtAvailable(court) {
		return nil, fmt.Errorf("%w: %s %s", ErrCourtUnavailable, court, ts.Time())
	}

	price, err := services.PriceCalculator.Price(date, ts.Time())
	if err != nil {
		return nil, err
	}

	return &Reservation{
		contact:   contact,
		fecha:     fecha.Long(date),
		hora:      ts.Time(),
		court:     court,
		price:     price,
		paid:      false,
		createdAt: services.Clock.Now(),
	}, nil
}

func ReconstructReservation(
	contact Contact,
	fechaLabel, hora string,
	court slot.Court,
	price Money,
	paid bool,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		contact:   contact,
		fecha:     fechaLabel,
		hora:      hora,
		court:     court,
		price:     price,
		paid:      paid,
		createdAt: createdAt,
	}
}

// MarkPaid flips the pending reservation to paid. It is the only mutation.
func (r *Reservation) MarkPaid() error {
	if r.paid {
		return ErrAlreadyPaid
	}
	r.paid = true
	return nil
}

func (r *Reservation) DownPayment() Money {
	return r.price.DownPayment()
}

func (r *Reservation) Remaining() Money {
	return r.price.Remaining()
}

// Concept describes the seña charge, e.g. "Seña cancha 2 4 de octubre 20:00".
func (r *Reservation) Concept() string {
	return fmt.Sprintf("Seña cancha %d %s %s", r.court.Int(), r.fecha, r.hora)
}

func (r *Reservation) PaymentRequest() PaymentRequest {
	return PaymentRequest{
		Amount:  r.DownPayment().Amount(),
		Concept: r.Concept(),
		Email:   r.contact.Email(),
	}
}

func (r *Reservation) Contact() Contact     { return r.contact }
func (r *Reservation) Fecha() string        { return r.fecha }
func (r *Reservation) Hora() string         { return r.hora }
func (r *Reservation) Court() slot.Court    { return r.court }
func (r *Reservation) Price() Money         { return r.price }
func (r *Reservation) IsPaid() bool         { return r.paid }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
