package converter

import (
	"sarmiento-f5/internal/domain/slot"
	"sarmiento-f5/internal/domain/waitlist"
)

type WaitlistRecord struct {
	Nombre           string `json:"nombre"`
	Telefono         string `json:"telefono"`
	Fecha            string `json:"fecha"`
	Hora             string `json:"hora"`
	Cancha           int    `json:"cancha"`
	FechaInscripcion Stamp  `json:"fechaInscripcion"`
}

func WaitlistToRecords(entries []*waitlist.Entry) []WaitlistRecord {
	out := make([]WaitlistRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, WaitlistRecord{
			Nombre:           e.Name(),
			Telefono:         e.Phone(),
			Fecha:            e.Fecha(),
			Hora:             e.Hora(),
			Cancha:           e.Court().Int(),
			FechaInscripcion: NewStamp(e.RegisteredAt()),
		})
	}
	return out
}

// WaitlistFromRecord rebuilds one entry. Only the court is checked; a
// missing registration time stays zero.
func WaitlistFromRecord(rec WaitlistRecord) (*waitlist.Entry, error) {
	court, err := slot.NewCourt(rec.Cancha)
	if err != nil {
		return nil, err
	}
	return waitlist.ReconstructEntry(rec.Nombre, rec.Telefono, rec.Fecha, rec.Hora, court, rec.FechaInscripcion.Time), nil
}
