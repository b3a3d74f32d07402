//go:build unit || e2e

package kvtest

import (
	"context"
	"testing"

	"sarmiento-f5/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract checks the behaviour every backend must share. newStore
// must return an empty store.
func RunStoreContract(t *testing.T, newStore func(t *testing.T) kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key is absent, not an error", func(t *testing.T) {
		s := newStore(t)
		v, ok, err := s.Get(ctx, "waitlist")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("set then get round trips bytes", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "reservaTemp", []byte(`{"nombre":"Ana"}`)))

		v, ok, err := s.Get(ctx, "reservaTemp")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `{"nombre":"Ana"}`, string(v))
	})

	t.Run("set overwrites the whole value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "waitlist", []byte(`[1,2,3]`)))
		require.NoError(t, s.Set(ctx, "waitlist", []byte(`[]`)))

		v, _, err := s.Get(ctx, "waitlist")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(v))
	})

	t.Run("delete removes and tolerates missing keys", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "reservaTemp", []byte(`{}`)))
		require.NoError(t, s.Delete(ctx, "reservaTemp"))
		require.NoError(t, s.Delete(ctx, "reservaTemp"))

		_, ok, err := s.Get(ctx, "reservaTemp")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "reservasHistorial", []byte(`[]`)))
		require.NoError(t, s.Delete(ctx, "reservaTemp"))

		_, ok, err := s.Get(ctx, "reservasHistorial")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
