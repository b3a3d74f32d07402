package request

import (
	"sarmiento-f5/internal/domain/rivals"
	"sarmiento-f5/internal/pkg/patch"
	"sarmiento-f5/internal/usecase/commands"
	"sarmiento-f5/internal/usecase/queries"
)

type ListingRequest struct {
	Type           string `json:"type" binding:"required,oneof=team player"`
	Name           string `json:"name"`
	Level          string `json:"level"`
	DayPreference  string `json:"dayPreference"`
	TimePreference string `json:"timePreference"`
	Location       string `json:"location"`
	Contact        string `json:"contact"`
	Players        *int   `json:"players,omitempty"`
	NeedsPlayers   *bool  `json:"needsPlayers,omitempty"`
	Position       string `json:"position,omitempty"`
	Age            *int   `json:"age,omitempty"`
}

func (r ListingRequest) ToCommand() commands.ListingDraft {
	return commands.ListingDraft{
		Type:           rivals.Kind(r.Type),
		Name:           r.Name,
		Level:          r.Level,
		DayPreference:  r.DayPreference,
		TimePreference: r.TimePreference,
		Location:       r.Location,
		Contact:        r.Contact,
		Players:        patch.Coalesce(r.Players, 0),
		NeedsPlayers:   patch.Coalesce(r.NeedsPlayers, false),
		Position:       r.Position,
		Age:            patch.Coalesce(r.Age, 0),
	}
}

// SearchRivalsQuery binds repeatable facet parameters, e.g.
// ?level=Intermedio&level=Avanzado.
type SearchRivalsQuery struct {
	Q        string   `form:"q"`
	Type     *string  `form:"type"`
	Level    []string `form:"level"`
	Location []string `form:"location"`
	Day      []string `form:"day"`
	Time     []string `form:"time"`
}

func (q SearchRivalsQuery) ToParams() queries.SearchParams {
	return queries.SearchParams{
		Query:     q.Q,
		Type:      patch.NonBlank(q.Type, string(rivals.KindAll)),
		Levels:    q.Level,
		Locations: q.Location,
		Days:      q.Day,
		Times:     q.Time,
	}
}
