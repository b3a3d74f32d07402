package request

import (
	"sarmiento-f5/internal/usecase/commands"
)

// BookingRequest is shared by quote and checkout. Contact fields are checked
// by the usecase so a missing one yields the "Campos incompletos" notice.
type BookingRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
	Fecha    string `json:"fecha" example:"2025-10-04"`
	Hora     string `json:"hora" binding:"required" example:"20:00"`
	Cancha   int    `json:"cancha" binding:"required,min=1,max=4"`
}

func (r BookingRequest) ToCommand() commands.BookingRequest {
	return commands.BookingRequest{
		Nombre:   r.Nombre,
		Telefono: r.Telefono,
		Email:    r.Email,
		Fecha:    r.Fecha,
		Hora:     r.Hora,
		Cancha:   r.Cancha,
	}
}

// PaymentQuery is the query string of the payment return page.
type PaymentQuery struct {
	Monto    string `form:"monto"`
	Concepto string `form:"concepto"`
	Email    string `form:"email"`
}

func (q PaymentQuery) ToCommand() commands.PaymentParams {
	return commands.PaymentParams{
		Monto:    q.Monto,
		Concepto: q.Concepto,
		Email:    q.Email,
	}
}
