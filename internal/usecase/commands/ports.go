package commands

import (
	"context"

	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/domain/rivals"
	"sarmiento-f5/internal/domain/waitlist"
)

// Write-side ports. Implementations live in infra/repository.

type ReservationStore interface {
	Pending(ctx context.Context) (*reservation.Reservation, error)
	SavePending(ctx context.Context, res *reservation.Reservation) error
	DeletePending(ctx context.Context) error
	AppendHistory(ctx context.Context, res *reservation.Reservation) error
}

type WaitlistStore interface {
	List(ctx context.Context) ([]*waitlist.Entry, error)
	Save(ctx context.Context, entries []*waitlist.Entry) error
}

type ListingStore interface {
	Prepend(ctx context.Context, l rivals.Listing) error
}
