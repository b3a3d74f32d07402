package repository

import (
	"context"
	"sync"

	"sarmiento-f5/internal/domain/rivals"
)

// ListingRepository is the rivals board. It lives in process memory and is
// reseeded with the sample listings on every start.
type ListingRepository struct {
	mu       sync.RWMutex
	listings []rivals.Listing
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{listings: rivals.Samples()}
}

func (r *ListingRepository) All(_ context.Context) ([]rivals.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]rivals.Listing, len(r.listings))
	copy(out, r.listings)
	return out, nil
}

// Prepend puts l first so the newest listing is shown on top.
func (r *ListingRepository) Prepend(_ context.Context, l rivals.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings = append([]rivals.Listing{l}, r.listings...)
	return nil
}
