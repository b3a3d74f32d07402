package queries

import (
	"context"

	"sarmiento-f5/internal/domain/rivals"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/pkg/outlink"
	"sarmiento-f5/internal/usecase/shared"
)

//go:generate mockgen -source=rivals.go -destination=../../../tests/mock/queries/rivals_mock.go -package=queriesmock

var ErrInvalidFilter = errs.New("invalid rivals filter")

// ListingView flattens both variants. Variant fields are nil on the other
// kind.
type ListingView struct {
	ID             int
	Type           string
	Name           string
	Level          string
	DayPreference  string
	TimePreference string
	Location       string
	Contact        string
	Created        string
	WhatsApp       string
	Players        *int
	NeedsPlayers   *bool
	Position       *string
	Age            *int
}

type SearchParams struct {
	Query     string
	Type      string
	Levels    []string
	Locations []string
	Days      []string
	Times     []string
}

type FilterOptionsView struct {
	Types     []string
	Levels    []string
	Locations []string
	Days      []string
	Times     []string
	Positions []string
}

type ListingReadStore interface {
	All(ctx context.Context) ([]rivals.Listing, error)
}

type RivalsQueries interface {
	Search(ctx context.Context, params SearchParams) ([]*ListingView, error)
	Options(ctx context.Context) *FilterOptionsView
	View(l rivals.Listing) *ListingView
}

type rivalsQueriesImpl struct {
	store            ListingReadStore
	fallbackWhatsApp string
}

func NewRivalsQueries(store ListingReadStore, fallbackWhatsApp string) RivalsQueries {
	return &rivalsQueriesImpl{store: store, fallbackWhatsApp: fallbackWhatsApp}
}

func (q *rivalsQueriesImpl) Search(ctx context.Context, params SearchParams) ([]*ListingView, error) {
	kind, err := rivals.ParseKind(params.Type)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidFilter)
	}
	filter := rivals.Filter{
		Query:     params.Query,
		Kind:      kind,
		Levels:    convert[rivals.Level](params.Levels),
		Locations: params.Locations,
		Days:      params.Days,
		Times:     convert[rivals.TimeOfDay](params.Times),
	}

	all, err := q.store.All(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	matched := filter.Apply(all)
	out := make([]*ListingView, 0, len(matched))
	for _, l := range matched {
		out = append(out, q.View(l))
	}
	return out, nil
}

func (q *rivalsQueriesImpl) Options(_ context.Context) *FilterOptionsView {
	return &FilterOptionsView{
		Types:     []string{string(rivals.KindAll), string(rivals.KindTeam), string(rivals.KindPlayer)},
		Levels:    strs(rivals.Levels),
		Locations: strs(rivals.Locations),
		Days:      append([]string(nil), rivals.Days...),
		Times:     strs(rivals.Times),
		Positions: strs(rivals.Positions),
	}
}

func (q *rivalsQueriesImpl) View(l rivals.Listing) *ListingView {
	p := l.Summary()
	view := &ListingView{
		ID:             p.ID,
		Type:           string(rivals.KindOf(l)),
		Name:           p.Name,
		Level:          string(p.Level),
		DayPreference:  p.DayPreference,
		TimePreference: string(p.TimePreference),
		Location:       string(p.Location),
		Contact:        p.Contact,
		Created:        p.Created,
		WhatsApp:       outlink.WhatsApp(p.Contact, q.fallbackWhatsApp),
	}
	return rivals.Match(l,
		func(t *rivals.Team) *ListingView {
			players, needs := t.Players, t.NeedsPlayers
			view.Players = &players
			view.NeedsPlayers = &needs
			return view
		},
		func(pl *rivals.Player) *ListingView {
			pos := string(pl.Position)
			view.Position = &pos
			age := pl.Age
			view.Age = &age
			return view
		},
	)
}

func convert[T ~string](in []string) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, 0, len(in))
	for _, s := range in {
		out = append(out, T(s))
	}
	return out
}

func strs[T ~string](in []T) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, string(v))
	}
	return out
}
