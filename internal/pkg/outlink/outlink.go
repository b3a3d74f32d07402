// Package outlink builds the outbound dial and messaging links shown next to
// waitlist entries and rival listings.
package outlink

import (
	"strings"
)

const whatsAppMarker = "WhatsApp:"

// Tel returns a dial link for phone exactly as it was stored.
func Tel(phone string) string {
	return "tel:" + phone
}

// WhatsAppNumber extracts the digits of the number in a free-text contact
// such as "Juan (WhatsApp: 123-456-7890)". Only the text after the
// "WhatsApp:" marker is considered when the marker is present. fallback is
// returned when no digit is found.
func WhatsAppNumber(contact, fallback string) string {
	text := contact
	if _, after, found := strings.Cut(contact, whatsAppMarker); found {
		text = after
	}
	if digits := Digits(text); digits != "" {
		return digits
	}
	return fallback
}

// WhatsApp returns the wa.me chat link for a free-text contact.
func WhatsApp(contact, fallback string) string {
	return "https://wa.me/" + WhatsAppNumber(contact, fallback)
}

func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
