package response

import (
	"sarmiento-f5/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ListingResponse struct {
	ID             int     `json:"id"`
	Type           string  `json:"type"`
	Name           string  `json:"name"`
	Level          string  `json:"level"`
	DayPreference  string  `json:"dayPreference"`
	TimePreference string  `json:"timePreference"`
	Location       string  `json:"location"`
	Contact        string  `json:"contact"`
	Created        string  `json:"created,omitempty"`
	WhatsApp       string  `json:"whatsapp"`
	Players        *int    `json:"players,omitempty"`
	NeedsPlayers   *bool   `json:"needsPlayers,omitempty"`
	Position       *string `json:"position,omitempty"`
	Age            *int    `json:"age,omitempty"`
}

type PublishResponse struct {
	Notice
	Listing *ListingResponse `json:"listing"`
}

type FilterOptionsResponse struct {
	Types     []string `json:"types"`
	Levels    []string `json:"levels"`
	Locations []string `json:"locations"`
	Days      []string `json:"days"`
	Times     []string `json:"times"`
	Positions []string `json:"positions"`
}

func FromListingView(v *queries.ListingView) (*ListingResponse, error) {
	var resp ListingResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromListingViews(vs []*queries.ListingView) ([]*ListingResponse, error) {
	out := make([]*ListingResponse, 0, len(vs))
	for _, v := range vs {
		resp, err := FromListingView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func FromFilterOptions(v *queries.FilterOptionsView) *FilterOptionsResponse {
	var resp FilterOptionsResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
