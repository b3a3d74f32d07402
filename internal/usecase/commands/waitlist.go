package commands

import (
	"context"
	"time"

	"sarmiento-f5/internal/domain/slot"
	"sarmiento-f5/internal/domain/waitlist"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/pkg/metrics"
	"sarmiento-f5/internal/usecase/shared"
)

//go:generate mockgen -source=waitlist.go -destination=../../../tests/mock/commands/waitlist_mock.go -package=commandsmock

var ErrWaitlistEntryNotFound = errs.New("waitlist entry not found")

type JoinWaitlistRequest struct {
	Nombre   string
	Telefono string
	Fecha    string
	Hora     string
	Cancha   int
}

type WaitlistCommands interface {
	Join(ctx context.Context, req JoinWaitlistRequest) (*waitlist.Entry, error)
	Remove(ctx context.Context, index int) (*waitlist.Entry, error)
	MarkContacted(ctx context.Context, index int) (*waitlist.Entry, error)
}

type waitlistCommandsImpl struct {
	store     WaitlistStore
	clock     clock.Clock
	calendar  shared.Calendar
	joinDelay time.Duration
}

func NewWaitlistCommands(store WaitlistStore, clk clock.Clock, calendar shared.Calendar, joinDelay time.Duration) WaitlistCommands {
	return &waitlistCommandsImpl{store: store, clock: clk, calendar: calendar, joinDelay: joinDelay}
}

// Join appends a request to be called back. Duplicates are accepted.
func (uc *waitlistCommandsImpl) Join(ctx context.Context, req JoinWaitlistRequest) (*waitlist.Entry, error) {
	day, err := uc.calendar.ResolveDay(req.Fecha)
	if err != nil {
		return nil, err
	}
	ts, err := slot.Find(req.Hora)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}
	court, err := slot.NewCourt(req.Cancha)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}
	entry, err := waitlist.NewEntry(uc.clock, req.Nombre, req.Telefono, day, ts, court)
	if err != nil {
		if errs.Is(err, waitlist.ErrNameRequired) || errs.Is(err, waitlist.ErrPhoneRequired) {
			return nil, errs.Mark(err, ErrIncompleteFields)
		}
		return nil, err
	}

	if err := uc.clock.Sleep(ctx, uc.joinDelay); err != nil {
		return nil, err
	}

	entries, err := uc.store.List(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	if err := uc.store.Save(ctx, waitlist.Append(entries, entry)); err != nil {
		return nil, shared.StoreErr(err)
	}

	metrics.WaitlistEvents.WithLabelValues("joined").Inc()
	return entry, nil
}

// Remove deletes the entry currently shown at index and rewrites the list.
func (uc *waitlistCommandsImpl) Remove(ctx context.Context, index int) (*waitlist.Entry, error) {
	entries, err := uc.store.List(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	rest, removed, err := waitlist.RemoveAt(entries, index)
	if err != nil {
		return nil, errs.Mark(err, ErrWaitlistEntryNotFound)
	}
	if err := uc.store.Save(ctx, rest); err != nil {
		return nil, shared.StoreErr(err)
	}

	metrics.WaitlistEvents.WithLabelValues("deleted").Inc()
	return removed, nil
}

// MarkContacted only acknowledges; the entry is not changed or persisted.
func (uc *waitlistCommandsImpl) MarkContacted(ctx context.Context, index int) (*waitlist.Entry, error) {
	entries, err := uc.store.List(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	entry, err := waitlist.At(entries, index)
	if err != nil {
		return nil, errs.Mark(err, ErrWaitlistEntryNotFound)
	}

	metrics.WaitlistEvents.WithLabelValues("contacted").Inc()
	return entry, nil
}
