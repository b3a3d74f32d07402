//go:build unit

package kvstore_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"sarmiento-f5/internal/infra/kvstore"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/tests/common/kvtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	kvtest.RunStoreContract(t, func(t *testing.T) kvstore.Store {
		return kvstore.NewMemoryStore()
	})

	t.Run("returned values are copies", func(t *testing.T) {
		ctx := context.Background()
		s := kvstore.NewMemoryStore()
		in := []byte("abc")
		require.NoError(t, s.Set(ctx, "k", in))
		in[0] = 'x'

		out, _, err := s.Get(ctx, "k")
		require.NoError(t, err)
		out[1] = 'y'

		again, _, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(again))
	})

	t.Run("closed store refuses operations", func(t *testing.T) {
		s := kvstore.NewMemoryStore()
		require.NoError(t, s.Close())

		_, _, err := s.Get(context.Background(), "k")
		assert.ErrorIs(t, err, kvstore.ErrClosed)
		assert.ErrorIs(t, s.Set(context.Background(), "k", nil), kvstore.ErrClosed)
	})
}

func TestSQLiteStore(t *testing.T) {
	kvtest.RunStoreContract(t, func(t *testing.T) kvstore.Store {
		s, err := kvstore.NewSQLiteStore(filepath.Join(t.TempDir(), "kv.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})

	t.Run("values survive reopening the file", func(t *testing.T) {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "kv.db")

		s, err := kvstore.NewSQLiteStore(path)
		require.NoError(t, err)
		require.NoError(t, s.Set(ctx, "waitlist", []byte(`[{"nombre":"Ana"}]`)))
		require.NoError(t, s.Close())

		reopened, err := kvstore.NewSQLiteStore(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = reopened.Close() })

		v, ok, err := reopened.Get(ctx, "waitlist")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"nombre":"Ana"}]`, string(v))
	})

	t.Run("unopenable path fails with a stack", func(t *testing.T) {
		_, err := kvstore.NewSQLiteStore(filepath.Join(t.TempDir(), "missing", "dir", "kv.db"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "migration failed")
		assert.Contains(t, strings.Join(errs.ExtractStackLines(err, 0), "\n"), "NewSQLiteStore")
	})
}

func TestInstrumented(t *testing.T) {
	kvtest.RunStoreContract(t, func(t *testing.T) kvstore.Store {
		return kvstore.WithMetrics(kvstore.NewMemoryStore(), "memory")
	})
}
