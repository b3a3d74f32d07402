package response

import (
	"time"

	"sarmiento-f5/internal/usecase/commands"
	"sarmiento-f5/internal/usecase/queries"
)

type ReservationResponse struct {
	Nombre        string    `json:"nombre"`
	Telefono      string    `json:"telefono"`
	Email         string    `json:"email"`
	Fecha         string    `json:"fecha"`
	Hora          string    `json:"hora"`
	Cancha        int       `json:"cancha"`
	Precio        int       `json:"precio"`
	Sena          int       `json:"sena"`
	Restante      int       `json:"restante"`
	Pagado        bool      `json:"pagado"`
	FechaCreacion time.Time `json:"fechaCreacion"`
	Nota          string    `json:"nota"`
}

type CheckoutResponse struct {
	Reservation *ReservationResponse `json:"reserva"`
	Redirect    string               `json:"redirect"`
	Monto       int                  `json:"monto"`
	Concepto    string               `json:"concepto"`
	Email       string               `json:"email"`
}

type PaymentResponse struct {
	Notice
	Reservation *ReservationResponse `json:"reserva,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		Nombre:        v.Nombre,
		Telefono:      v.Telefono,
		Email:         v.Email,
		Fecha:         v.Fecha,
		Hora:          v.Hora,
		Cancha:        v.Cancha,
		Precio:        v.Precio,
		Sena:          v.Sena,
		Restante:      v.Restante,
		Pagado:        v.Pagado,
		FechaCreacion: v.FechaCreacion,
		Nota:          v.ArrivalNote,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromReservationView(v))
	}
	return out
}

func FromCheckout(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Reservation: FromReservationView(queries.ToReservationView(r.Reservation)),
		Redirect:    r.Payment.URL(),
		Monto:       r.Payment.Amount,
		Concepto:    r.Payment.Concept,
		Email:       r.Payment.Email,
	}
}
