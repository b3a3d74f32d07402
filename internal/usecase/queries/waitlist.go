package queries

import (
	"context"
	"time"

	"sarmiento-f5/internal/domain/waitlist"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/pkg/fecha"
	"sarmiento-f5/internal/usecase/shared"
)

//go:generate mockgen -source=waitlist.go -destination=../../../tests/mock/queries/waitlist_mock.go -package=queriesmock

var ErrWaitlistEntryNotFound = errs.New("waitlist entry not found")

type WaitlistItemView struct {
	Index            int
	Nombre           string
	Telefono         string
	Fecha            string
	Hora             string
	Cancha           int
	FechaInscripcion string
	RegisteredAt     time.Time
	CallLink         string
}

type WaitlistReadStore interface {
	List(ctx context.Context) ([]*waitlist.Entry, error)
}

type WaitlistQueries interface {
	List(ctx context.Context) ([]*WaitlistItemView, error)
	CallLink(ctx context.Context, index int) (string, error)
}

type waitlistQueriesImpl struct {
	store WaitlistReadStore
	loc   *time.Location
}

func NewWaitlistQueries(store WaitlistReadStore, loc *time.Location) WaitlistQueries {
	return &waitlistQueriesImpl{store: store, loc: loc}
}

// List returns entries in insertion order. Index is the position the admin
// actions address.
func (q *waitlistQueriesImpl) List(ctx context.Context) ([]*WaitlistItemView, error) {
	entries, err := q.store.List(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	out := make([]*WaitlistItemView, 0, len(entries))
	for i, e := range entries {
		out = append(out, &WaitlistItemView{
			Index:            i,
			Nombre:           e.Name(),
			Telefono:         e.Phone(),
			Fecha:            e.Fecha(),
			Hora:             e.Hora(),
			Cancha:           e.Court().Int(),
			FechaInscripcion: fecha.Stamp(e.RegisteredAt(), q.loc),
			RegisteredAt:     e.RegisteredAt(),
			CallLink:         e.CallLink(),
		})
	}
	return out, nil
}

func (q *waitlistQueriesImpl) CallLink(ctx context.Context, index int) (string, error) {
	entries, err := q.store.List(ctx)
	if err != nil {
		return "", shared.StoreErr(err)
	}
	e, err := waitlist.At(entries, index)
	if err != nil {
		return "", errs.Mark(err, ErrWaitlistEntryNotFound)
	}
	return e.CallLink(), nil
}
