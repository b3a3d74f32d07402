package request

import (
	"sarmiento-f5/internal/usecase/commands"
)

type JoinWaitlistRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Fecha    string `json:"fecha" example:"2025-10-04"`
	Hora     string `json:"hora" binding:"required" example:"20:00"`
	Cancha   int    `json:"cancha" binding:"required,min=1,max=4"`
}

func (r JoinWaitlistRequest) ToCommand() commands.JoinWaitlistRequest {
	return commands.JoinWaitlistRequest{
		Nombre:   r.Nombre,
		Telefono: r.Telefono,
		Fecha:    r.Fecha,
		Hora:     r.Hora,
		Cancha:   r.Cancha,
	}
}

type WaitlistIndexURI struct {
	Index *int `uri:"index" binding:"required"`
}
