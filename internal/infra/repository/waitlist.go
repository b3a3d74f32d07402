package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"sarmiento-f5/internal/domain/waitlist"
	"sarmiento-f5/internal/infra/kvstore"
	"sarmiento-f5/internal/infra/repository/converter"
)

type WaitlistRepository struct {
	list jsonValue[[]*waitlist.Entry]
}

func NewWaitlistRepository(store kvstore.Store, logger *slog.Logger) *WaitlistRepository {
	return &WaitlistRepository{
		list: jsonValue[[]*waitlist.Entry]{store: store, key: KeyWaitlist, logger: logger},
	}
}

// List returns entries in insertion order. A missing or unreadable list is
// empty; unreadable entries inside a readable list are skipped.
func (r *WaitlistRepository) List(ctx context.Context) ([]*waitlist.Entry, error) {
	entries, _, err := r.list.load(ctx, func(raw []byte) ([]*waitlist.Entry, error) {
		out := make([]*waitlist.Entry, 0)
		err := r.list.decodeEach(raw, func(item json.RawMessage) error {
			var rec converter.WaitlistRecord
			if err := json.Unmarshal(item, &rec); err != nil {
				return err
			}
			e, err := converter.WaitlistFromRecord(rec)
			if err != nil {
				return err
			}
			out = append(out, e)
			return nil
		})
		return out, err
	})
	return entries, err
}

// Save rewrites the whole list.
func (r *WaitlistRepository) Save(ctx context.Context, entries []*waitlist.Entry) error {
	return r.list.save(ctx, converter.WaitlistToRecords(entries))
}
