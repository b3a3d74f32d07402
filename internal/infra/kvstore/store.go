// Package kvstore is the browser-storage stand-in: whole JSON values under a
// handful of fixed keys.
//
// Store offers no compare-and-swap. Callers that read, modify and write a
// value back can lose concurrent updates; that is accepted behaviour.
package kvstore

import (
	"context"
	"errors"

	"sarmiento-f5/internal/pkg/metrics"
)

//go:generate mockgen -source=store.go -destination=../../../tests/mock/kvstore/store_mock.go -package=kvstoremock

var ErrClosed = errors.New("kvstore: store is closed")

type Store interface {
	// Get returns ok=false when key has never been set or was deleted.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete of a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Instrumented counts every operation of the wrapped store per backend.
type Instrumented struct {
	Store
	backend string
}

func WithMetrics(s Store, backend string) *Instrumented {
	return &Instrumented{Store: s, backend: backend}
}

func (s *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok, err := s.Store.Get(ctx, key)
	metrics.RecordStoreOperation(s.backend, "get", err)
	return v, ok, err
}

func (s *Instrumented) Set(ctx context.Context, key string, value []byte) error {
	err := s.Store.Set(ctx, key, value)
	metrics.RecordStoreOperation(s.backend, "set", err)
	return err
}

func (s *Instrumented) Delete(ctx context.Context, key string) error {
	err := s.Store.Delete(ctx, key)
	metrics.RecordStoreOperation(s.backend, "delete", err)
	return err
}
