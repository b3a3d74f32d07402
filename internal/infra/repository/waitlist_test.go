//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"sarmiento-f5/internal/domain/waitlist"
	"sarmiento-f5/internal/infra/kvstore"
	"sarmiento-f5/internal/infra/repository"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitlistRepository(t *testing.T) {
	ctx := context.Background()
	c := clock.NewMockClock(time.Date(2025, time.October, 3, 18, 0, 0, 0, time.UTC))

	entry := func(name string) *waitlist.Entry {
		e, err := builder.NewWaitlistBuilder().With(func(b *builder.WaitlistBuilder) { b.Nombre = name }).BuildDomain(c)
		require.NoError(t, err)
		return e
	}
	names := func(entries []*waitlist.Entry) []string {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Name())
		}
		return out
	}

	t.Run("empty when never written", func(t *testing.T) {
		repo := repository.NewWaitlistRepository(kvstore.NewMemoryStore(), discard)
		got, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("save then list keeps order", func(t *testing.T) {
		repo := repository.NewWaitlistRepository(kvstore.NewMemoryStore(), discard)
		require.NoError(t, repo.Save(ctx, []*waitlist.Entry{entry("Ana"), entry("Beto"), entry("Ana")}))

		got, err := repo.List(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff([]string{"Ana", "Beto", "Ana"}, names(got)); diff != "" {
			t.Errorf("waitlist mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "tel:3794 55-1234", got[0].CallLink())
	})

	t.Run("saving an empty list is not deleting it", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		repo := repository.NewWaitlistRepository(store, discard)
		require.NoError(t, repo.Save(ctx, nil))

		raw, ok, err := store.Get(ctx, repository.KeyWaitlist)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "[]", string(raw))
	})

	t.Run("malformed list reads as empty", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Set(ctx, repository.KeyWaitlist, []byte(`[{"nombre":`)))
		repo := repository.NewWaitlistRepository(store, discard)

		got, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("one unreadable entry does not hide the others", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Set(ctx, repository.KeyWaitlist, []byte(`[
			{"nombre":"Ana","telefono":"1","fecha":"4 de octubre","hora":"20:00","cancha":2,"fechaInscripcion":"2025-10-03T18:00:00Z"},
			{"nombre":"Rota","telefono":"2","fecha":"4 de octubre","hora":"20:00","cancha":7,"fechaInscripcion":"2025-10-03T18:01:00Z"},
			"garbage",
			{"nombre":"Beto","telefono":"3","fecha":"4 de octubre","hora":"21:00","cancha":1,"fechaInscripcion":"2025-10-03T18:02:00Z"}
		]`)))
		repo := repository.NewWaitlistRepository(store, discard)

		got, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ana", "Beto"}, names(got))
	})

	t.Run("missing registration time reads as zero", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Set(ctx, repository.KeyWaitlist, []byte(`[
			{"nombre":"Ana","telefono":"1","fecha":"4 de octubre","hora":"20:00","cancha":2,"fechaInscripcion":""},
			{"nombre":"Beto","telefono":"2","fecha":"4 de octubre","hora":"20:00","cancha":2,"fechaInscripcion":null},
			{"nombre":"Caro","telefono":"3","fecha":"4 de octubre","hora":"20:00","cancha":2}
		]`)))
		repo := repository.NewWaitlistRepository(store, discard)

		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"Ana", "Beto", "Caro"}, names(got))
		for _, e := range got {
			assert.True(t, e.RegisteredAt().IsZero(), e.Name())
		}

		require.NoError(t, repo.Save(ctx, got[:1]))
		raw, _, err := store.Get(ctx, repository.KeyWaitlist)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"fechaInscripcion":""`)
	})

	t.Run("concurrent read-modify-write loses an update", func(t *testing.T) {
		repo := repository.NewWaitlistRepository(kvstore.NewMemoryStore(), discard)

		first, err := repo.List(ctx)
		require.NoError(t, err)
		second, err := repo.List(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, waitlist.Append(first, entry("Ana"))))
		require.NoError(t, repo.Save(ctx, waitlist.Append(second, entry("Beto"))))

		got, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Beto"}, names(got))
	})
}
