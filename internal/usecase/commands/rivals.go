package commands

import (
	"context"
	"time"

	"sarmiento-f5/internal/domain/rivals"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/pkg/metrics"
	"sarmiento-f5/internal/usecase/shared"
)

//go:generate mockgen -source=rivals.go -destination=../../../tests/mock/commands/rivals_mock.go -package=commandsmock

var ErrInvalidListingType = errs.New("type must be team or player")

// ListingDraft is the publish form. Team fields are ignored for players and
// the other way round.
type ListingDraft struct {
	Type           rivals.Kind
	Name           string
	Level          string
	DayPreference  string
	TimePreference string
	Location       string
	Contact        string
	Players        int
	NeedsPlayers   bool
	Position       string
	Age            int
}

func (d ListingDraft) toListing() (rivals.Listing, error) {
	profile := rivals.Profile{
		Name:           d.Name,
		Level:          rivals.Level(d.Level),
		DayPreference:  d.DayPreference,
		TimePreference: rivals.TimeOfDay(d.TimePreference),
		Location:       rivals.Location(d.Location),
		Contact:        d.Contact,
	}
	switch d.Type {
	case rivals.KindTeam:
		return &rivals.Team{Profile: profile, Players: d.Players, NeedsPlayers: d.NeedsPlayers}, nil
	case rivals.KindPlayer:
		return &rivals.Player{Profile: profile, Position: rivals.Position(d.Position), Age: d.Age}, nil
	}
	return nil, ErrInvalidListingType
}

type RivalsCommands interface {
	Preview(ctx context.Context, draft ListingDraft) (rivals.Listing, error)
	Publish(ctx context.Context, draft ListingDraft) (rivals.Listing, error)
}

type rivalsCommandsImpl struct {
	store        ListingStore
	ids          rivals.IDGenerator
	clock        clock.Clock
	publishDelay time.Duration
}

func NewRivalsCommands(store ListingStore, ids rivals.IDGenerator, clk clock.Clock, publishDelay time.Duration) RivalsCommands {
	return &rivalsCommandsImpl{store: store, ids: ids, clock: clk, publishDelay: publishDelay}
}

// Preview validates the draft and echoes it back. Nothing is stored.
func (uc *rivalsCommandsImpl) Preview(_ context.Context, draft ListingDraft) (rivals.Listing, error) {
	l, err := draft.toListing()
	if err != nil {
		return nil, err
	}
	if err := rivals.Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *rivalsCommandsImpl) Publish(ctx context.Context, draft ListingDraft) (rivals.Listing, error) {
	l, err := uc.Preview(ctx, draft)
	if err != nil {
		return nil, err
	}
	if err := uc.clock.Sleep(ctx, uc.publishDelay); err != nil {
		return nil, err
	}

	published, err := rivals.Publish(l, uc.ids)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Prepend(ctx, published); err != nil {
		return nil, shared.StoreErr(err)
	}

	metrics.ListingsPublished.WithLabelValues(string(rivals.KindOf(published))).Inc()
	return published, nil
}
