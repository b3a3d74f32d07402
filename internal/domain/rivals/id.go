package rivals

import "math/rand/v2"

const (
	publishedIDBase = 200
	publishedIDSpan = 1000
)

// IDGenerator hands out ids for newly published listings.
type IDGenerator interface {
	Next() int
}

// RandomIDs draws from [200, 1199]. Collisions are possible and tolerated.
type RandomIDs struct{}

func (RandomIDs) Next() int {
	return rand.IntN(publishedIDSpan) + publishedIDBase
}

// Publish stamps a validated draft with its id and created label.
func Publish(l Listing, ids IDGenerator) (Listing, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}
	id := ids.Next()
	return Match(l,
		func(t *Team) Listing {
			out := *t
			out.ID, out.Created = id, JustPublished
			return &out
		},
		func(p *Player) Listing {
			out := *p
			out.ID, out.Created = id, JustPublished
			return &out
		},
	), nil
}
