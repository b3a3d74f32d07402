package rivals

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrInvalidListing = errors.New("invalid listing")

const (
	minNameLen    = 3
	minContactLen = 10
	minPlayers    = 1
	maxPlayers    = 15
	minAge        = 15
	maxAge        = 70
)

// FieldError carries the message shown next to a form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every failing field. It matches ErrInvalidListing.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid listing: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidListing
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// Validate checks a draft listing. Team and player rules differ only in the
// variant fields.
func Validate(l Listing) error {
	verr := &ValidationError{}
	validateProfile(verr, l.Summary())

	Match(l,
		func(t *Team) struct{} {
			switch {
			case t.Players < minPlayers:
				verr.add("players", "Debe haber al menos 1 jugador")
			case t.Players > maxPlayers:
				verr.add("players", "Máximo 15 jugadores")
			}
			return struct{}{}
		},
		func(p *Player) struct{} {
			if !contains(Positions, p.Position) {
				verr.add("position", "Por favor selecciona una posición")
			}
			switch {
			case p.Age < minAge:
				verr.add("age", "La edad mínima es 15 años")
			case p.Age > maxAge:
				verr.add("age", "La edad máxima es 70 años")
			}
			return struct{}{}
		},
	)

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func validateProfile(verr *ValidationError, p Profile) {
	if utf8.RuneCountInString(strings.TrimSpace(p.Name)) < minNameLen {
		verr.add("name", "El nombre debe tener al menos 3 caracteres")
	}
	if !contains(Levels, p.Level) {
		verr.add("level", "Por favor selecciona un nivel")
	}
	if strings.TrimSpace(p.DayPreference) == "" {
		verr.add("dayPreference", "Por favor selecciona un día")
	}
	if !contains(Times, p.TimePreference) {
		verr.add("timePreference", "Por favor selecciona un horario")
	}
	if !contains(Locations, p.Location) {
		verr.add("location", "Por favor selecciona una ubicación")
	}
	if utf8.RuneCountInString(strings.TrimSpace(p.Contact)) < minContactLen {
		verr.add("contact", "Por favor proporciona información de contacto válida")
	}
}
