package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"sarmiento-f5/internal/infra"
	"sarmiento-f5/internal/infra/kvstore"
	"sarmiento-f5/internal/pkg/metrics"
)

// jsonValue reads and writes one key holding a JSON document.
type jsonValue[T any] struct {
	store  kvstore.Store
	key    string
	logger *slog.Logger
}

// load reports ok=false both when the key is absent and when its value is
// unreadable. Unreadable values are logged and counted, never returned.
func (v jsonValue[T]) load(ctx context.Context, decode func(raw []byte) (T, error)) (T, bool, error) {
	var zero T
	raw, ok, err := v.loadRaw(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := decode(raw)
	if err != nil {
		v.discard(err)
		return zero, false, nil
	}
	return out, true, nil
}

func (v jsonValue[T]) loadRaw(ctx context.Context) ([]byte, bool, error) {
	raw, ok, err := v.store.Get(ctx, v.key)
	if err != nil {
		return nil, false, infra.WrapRepoErr(v.logger, infra.KindStoreFailure, "get", v.key, err)
	}
	return raw, ok, nil
}

func (v jsonValue[T]) discard(err error) {
	v.logger.Warn("Discarding malformed stored value",
		slog.String("key", v.key),
		slog.String("error", err.Error()))
	metrics.StoreCorruptReads.WithLabelValues(v.key).Inc()
}

// decodeEach decodes a JSON array element by element. Elements that fail
// conv are logged, counted and skipped; only a value that is not an array
// fails as a whole.
func (v jsonValue[T]) decodeEach(raw []byte, conv func(json.RawMessage) error) error {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}
	for i, item := range items {
		if err := conv(item); err != nil {
			v.logger.Warn("Skipping malformed stored record",
				slog.String("key", v.key),
				slog.Int("index", i),
				slog.String("error", err.Error()))
			metrics.StoreCorruptReads.WithLabelValues(v.key).Inc()
		}
	}
	return nil
}

func (v jsonValue[T]) save(ctx context.Context, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return infra.WrapRepoErr(v.logger, infra.KindEncode, "encode", v.key, err)
	}
	if err := v.store.Set(ctx, v.key, raw); err != nil {
		return infra.WrapRepoErr(v.logger, infra.KindStoreFailure, "set", v.key, err)
	}
	return nil
}

func (v jsonValue[T]) delete(ctx context.Context) error {
	if err := v.store.Delete(ctx, v.key); err != nil {
		return infra.WrapRepoErr(v.logger, infra.KindStoreFailure, "delete", v.key, err)
	}
	return nil
}
