package response

import (
	"sarmiento-f5/internal/usecase/queries"
)

type CourtResponse struct {
	Cancha     int  `json:"cancha"`
	Disponible bool `json:"disponible"`
}

type SlotResponse struct {
	ID         string          `json:"id"`
	Hora       string          `json:"hora"`
	Disponible bool            `json:"disponible"`
	Canchas    []CourtResponse `json:"canchas"`
	Precio     int             `json:"precio"`
	Sena       int             `json:"sena"`
}

type DayScheduleResponse struct {
	Date  string         `json:"date"`
	Fecha string         `json:"fecha"`
	Slots []SlotResponse `json:"slots"`
}

type BoardCellResponse struct {
	Cancha   int    `json:"cancha"`
	Estado   string `json:"estado"`
	Bookable bool   `json:"bookable"`
	Redirect string `json:"redirect,omitempty"`
}

type BoardRowResponse struct {
	Horario string              `json:"horario"`
	Canchas []BoardCellResponse `json:"canchas"`
}

func FromDaySchedule(v *queries.DayScheduleView) *DayScheduleResponse {
	resp := &DayScheduleResponse{Date: v.Date, Fecha: v.Fecha, Slots: make([]SlotResponse, 0, len(v.Slots))}
	for _, s := range v.Slots {
		courts := make([]CourtResponse, 0, len(s.Courts))
		for _, c := range s.Courts {
			courts = append(courts, CourtResponse{Cancha: c.Court, Disponible: c.Available})
		}
		resp.Slots = append(resp.Slots, SlotResponse{
			ID:         s.ID,
			Hora:       s.Time,
			Disponible: s.Available,
			Canchas:    courts,
			Precio:     s.Price,
			Sena:       s.DownPayment,
		})
	}
	return resp
}

func FromBoard(rows []*queries.BoardRowView) []BoardRowResponse {
	out := make([]BoardRowResponse, 0, len(rows))
	for _, r := range rows {
		row := BoardRowResponse{Horario: r.Range, Canchas: make([]BoardCellResponse, 0, len(r.Cells))}
		for _, c := range r.Cells {
			cell := BoardCellResponse{Cancha: c.Court, Estado: c.Status, Bookable: c.Bookable}
			if c.Bookable {
				cell.Redirect = RedirectBooking
			}
			row.Canchas = append(row.Canchas, cell)
		}
		out = append(out, row)
	}
	return out
}
