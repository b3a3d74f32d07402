//go:build unit || e2e

package builder

import (
	"sarmiento-f5/internal/domain/rivals"
	reqdto "sarmiento-f5/internal/handler/dto/request"
)

// ListingBuilder holds a draft that builds either variant.
type ListingBuilder struct {
	Name           string
	Level          rivals.Level
	DayPreference  string
	TimePreference rivals.TimeOfDay
	Location       rivals.Location
	Contact        string
	Players        int
	NeedsPlayers   bool
	Position       rivals.Position
	Age            int
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		Name:           "Real Corrientes",
		Level:          rivals.LevelIntermediate,
		DayPreference:  "Jueves",
		TimePreference: rivals.TimeNight,
		Location:       rivals.LocationCenter,
		Contact:        "Nico (WhatsApp: 379-400-1122)",
		Players:        7,
		NeedsPlayers:   true,
		Position:       rivals.PositionMidfielder,
		Age:            30,
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

func (l *ListingBuilder) profile() rivals.Profile {
	return rivals.Profile{
		Name:           l.Name,
		Level:          l.Level,
		DayPreference:  l.DayPreference,
		TimePreference: l.TimePreference,
		Location:       l.Location,
		Contact:        l.Contact,
	}
}

func (l *ListingBuilder) BuildTeam() *rivals.Team {
	return &rivals.Team{Profile: l.profile(), Players: l.Players, NeedsPlayers: l.NeedsPlayers}
}

func (l *ListingBuilder) BuildPlayer() *rivals.Player {
	return &rivals.Player{Profile: l.profile(), Position: l.Position, Age: l.Age}
}

func (l *ListingBuilder) BuildTeamRequestDTO() reqdto.ListingRequest {
	req := l.requestDTO(rivals.KindTeam)
	req.Players = &l.Players
	req.NeedsPlayers = &l.NeedsPlayers
	return req
}

func (l *ListingBuilder) BuildPlayerRequestDTO() reqdto.ListingRequest {
	req := l.requestDTO(rivals.KindPlayer)
	req.Position = string(l.Position)
	req.Age = &l.Age
	return req
}

func (l *ListingBuilder) requestDTO(kind rivals.Kind) reqdto.ListingRequest {
	return reqdto.ListingRequest{
		Type:           string(kind),
		Name:           l.Name,
		Level:          string(l.Level),
		DayPreference:  l.DayPreference,
		TimePreference: string(l.TimePreference),
		Location:       string(l.Location),
		Contact:        l.Contact,
	}
}
