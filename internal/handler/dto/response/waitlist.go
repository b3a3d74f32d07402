package response

import (
	"sarmiento-f5/internal/usecase/queries"
)

type WaitlistItemResponse struct {
	Index            int    `json:"index"`
	Nombre           string `json:"nombre"`
	Telefono         string `json:"telefono"`
	Fecha            string `json:"fecha"`
	Hora             string `json:"hora"`
	Cancha           int    `json:"cancha"`
	FechaInscripcion string `json:"fechaInscripcion"`
	Llamar           string `json:"llamar"`
}

type CallLinkResponse struct {
	Href string `json:"href"`
}

func FromWaitlistItems(items []*queries.WaitlistItemView) []*WaitlistItemResponse {
	out := make([]*WaitlistItemResponse, 0, len(items))
	for _, v := range items {
		out = append(out, &WaitlistItemResponse{
			Index:            v.Index,
			Nombre:           v.Nombre,
			Telefono:         v.Telefono,
			Fecha:            v.Fecha,
			Hora:             v.Hora,
			Cancha:           v.Cancha,
			FechaInscripcion: v.FechaInscripcion,
			Llamar:           v.CallLink,
		})
	}
	return out
}
