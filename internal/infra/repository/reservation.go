package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/infra"
	"sarmiento-f5/internal/infra/kvstore"
	"sarmiento-f5/internal/infra/repository/converter"
)

// ReservationRepository keeps the single pending reservation and the list
// of confirmed ones.
type ReservationRepository struct {
	pending jsonValue[*reservation.Reservation]
	history jsonValue[[]*reservation.Reservation]
	logger  *slog.Logger
}

func NewReservationRepository(store kvstore.Store, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		pending: jsonValue[*reservation.Reservation]{store: store, key: KeyPendingReservation, logger: logger},
		history: jsonValue[[]*reservation.Reservation]{store: store, key: KeyReservationHistory, logger: logger},
		logger:  logger,
	}
}

// Pending returns nil when no reservation is waiting for payment.
func (r *ReservationRepository) Pending(ctx context.Context) (*reservation.Reservation, error) {
	res, _, err := r.pending.load(ctx, decodeReservation)
	return res, err
}

// SavePending replaces any previous pending reservation.
func (r *ReservationRepository) SavePending(ctx context.Context, res *reservation.Reservation) error {
	return r.pending.save(ctx, converter.ReservationToRecord(res))
}

func (r *ReservationRepository) DeletePending(ctx context.Context) error {
	return r.pending.delete(ctx)
}

// History returns confirmed reservations oldest first. Unreadable entries
// are skipped, not fatal.
func (r *ReservationRepository) History(ctx context.Context) ([]*reservation.Reservation, error) {
	list, _, err := r.history.load(ctx, func(raw []byte) ([]*reservation.Reservation, error) {
		out := make([]*reservation.Reservation, 0)
		err := r.history.decodeEach(raw, func(item json.RawMessage) error {
			res, err := decodeReservation(item)
			if err != nil {
				return err
			}
			out = append(out, res)
			return nil
		})
		return out, err
	})
	return list, err
}

// AppendHistory reads the list, appends and writes it back. Not atomic.
// Stored entries are carried over as raw JSON so that ones this build
// cannot read are never dropped.
func (r *ReservationRepository) AppendHistory(ctx context.Context, res *reservation.Reservation) error {
	raw, ok, err := r.history.loadRaw(ctx)
	if err != nil {
		return err
	}
	var items []json.RawMessage
	if ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			r.history.discard(err)
			items = nil
		}
	}
	rec, err := json.Marshal(converter.ReservationToRecord(res))
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindEncode, "encode", KeyReservationHistory, err)
	}
	return r.history.save(ctx, append(items, rec))
}

func decodeReservation(raw []byte) (*reservation.Reservation, error) {
	var rec converter.ReservationRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return converter.ReservationFromRecord(rec)
}
