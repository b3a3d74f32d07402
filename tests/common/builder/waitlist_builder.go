//go:build unit || e2e

package builder

import (
	"time"

	"sarmiento-f5/internal/domain/slot"
	"sarmiento-f5/internal/domain/waitlist"
	reqdto "sarmiento-f5/internal/handler/dto/request"
	"sarmiento-f5/internal/pkg/clock"
)

type WaitlistBuilder struct {
	Nombre   string
	Telefono string
	Date     time.Time
	Hora     string
	Cancha   int
}

// NewWaitlistBuilder defaults to court 1 at 20:00, which is taken in the
// slot pattern.
func NewWaitlistBuilder() *WaitlistBuilder {
	return &WaitlistBuilder{
		Nombre:   "Martín Acosta",
		Telefono: "3794 55-1234",
		Date:     time.Date(2025, time.October, 4, 0, 0, 0, 0, time.UTC),
		Hora:     "20:00",
		Cancha:   1,
	}
}

func (w *WaitlistBuilder) With(mutate func(*WaitlistBuilder)) *WaitlistBuilder {
	mutate(w)
	return w
}

func (w *WaitlistBuilder) BuildDomain(c clock.Clock) (*waitlist.Entry, error) {
	ts, err := slot.Find(w.Hora)
	if err != nil {
		return nil, err
	}
	court, err := slot.NewCourt(w.Cancha)
	if err != nil {
		return nil, err
	}
	return waitlist.NewEntry(c, w.Nombre, w.Telefono, w.Date, ts, court)
}

func (w *WaitlistBuilder) DateParam() string {
	return w.Date.Format(time.DateOnly)
}

func (w *WaitlistBuilder) BuildRequestDTO() reqdto.JoinWaitlistRequest {
	return reqdto.JoinWaitlistRequest{
		Nombre:   w.Nombre,
		Telefono: w.Telefono,
		Fecha:    w.DateParam(),
		Hora:     w.Hora,
		Cancha:   w.Cancha,
	}
}
