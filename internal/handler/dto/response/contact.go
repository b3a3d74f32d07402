package response

import "sarmiento-f5/internal/usecase/queries"

type ContactResponse struct {
	WhatsApp  string `json:"whatsapp"`
	Maps      string `json:"maps"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

func FromContactView(v *queries.ContactView) *ContactResponse {
	return &ContactResponse{
		WhatsApp:  v.WhatsApp,
		Maps:      v.Maps,
		Facebook:  v.Facebook,
		Instagram: v.Instagram,
	}
}
