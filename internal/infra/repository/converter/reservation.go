package converter

import (
	"errors"

	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/domain/slot"
)

var ErrMissingContact = errors.New("stored reservation has an empty contact field")

// ReservationRecord is the stored shape under reservaTemp and inside
// reservasHistorial. Field names are part of the persisted contract.
type ReservationRecord struct {
	Nombre        string `json:"nombre"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email"`
	Fecha         string `json:"fecha"`
	Hora          string `json:"hora"`
	Cancha        int    `json:"cancha"`
	Precio        int    `json:"precio"`
	Pagado        bool   `json:"pagado"`
	FechaCreacion Stamp  `json:"fechaCreacion"`
}

func ReservationToRecord(r *reservation.Reservation) ReservationRecord {
	return ReservationRecord{
		Nombre:        r.Contact().Name(),
		Telefono:      r.Contact().Phone(),
		Email:         r.Contact().Email(),
		Fecha:         r.Fecha(),
		Hora:          r.Hora(),
		Cancha:        r.Court().Int(),
		Precio:        r.Price().Amount(),
		Pagado:        r.IsPaid(),
		FechaCreacion: NewStamp(r.CreatedAt()),
	}
}

// ReservationFromRecord accepts whatever the booking form let through:
// contact fields only have to be non-empty, as typed. Court and price must
// still be valid.
func ReservationFromRecord(rec ReservationRecord) (*reservation.Reservation, error) {
	if rec.Nombre == "" || rec.Telefono == "" || rec.Email == "" {
		return nil, ErrMissingContact
	}
	contact := reservation.ReconstructContact(rec.Nombre, rec.Telefono, rec.Email)
	court, err := slot.NewCourt(rec.Cancha)
	if err != nil {
		return nil, err
	}
	price, err := reservation.NewMoney(rec.Precio)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(contact, rec.Fecha, rec.Hora, court, price, rec.Pagado, rec.FechaCreacion.Time), nil
}
