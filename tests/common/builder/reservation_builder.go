//go:build unit || e2e

package builder

import (
	"time"

	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/domain/slot"
	reqdto "sarmiento-f5/internal/handler/dto/request"
)

type ReservationBuilder struct {
	Nombre   string
	Telefono string
	Email    string
	Date     time.Time
	Hora     string
	Cancha   int
}

// NewReservationBuilder defaults to court 2 at 20:00 on Saturday 4 October
// 2025, which is free in the slot pattern.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Nombre:   "Lucía Benítez",
		Telefono: "3794 12-3456",
		Email:    "lucia@example.com",
		Date:     time.Date(2025, time.October, 4, 0, 0, 0, 0, time.UTC),
		Hora:     "20:00",
		Cancha:   2,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain(services *reservation.Services) (*reservation.Reservation, error) {
	contact, err := reservation.NewContact(r.Nombre, r.Telefono, r.Email)
	if err != nil {
		return nil, err
	}
	ts, err := slot.Find(r.Hora)
	if err != nil {
		return nil, err
	}
	court, err := slot.NewCourt(r.Cancha)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(services, contact, r.Date, ts, court)
}

func (r *ReservationBuilder) DateParam() string {
	return r.Date.Format(time.DateOnly)
}

func (r *ReservationBuilder) BuildRequestDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		Nombre:   r.Nombre,
		Telefono: r.Telefono,
		Email:    r.Email,
		Fecha:    r.DateParam(),
		Hora:     r.Hora,
		Cancha:   r.Cancha,
	}
}
