//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"sarmiento-f5/internal/domain/waitlist"
	"sarmiento-f5/internal/infra/kvstore"
	"sarmiento-f5/internal/infra/repository"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/usecase/queries"
	"sarmiento-f5/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitlistQueries(t *testing.T) {
	ctx := context.Background()
	art, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	repo := repository.NewWaitlistRepository(kvstore.NewMemoryStore(), discard)
	c := clock.NewMockClock(time.Date(2025, time.October, 3, 21, 30, 0, 0, time.UTC))
	var entries []*waitlist.Entry
	for _, name := range []string{"Ana", "Beto"} {
		e, err := builder.NewWaitlistBuilder().With(func(b *builder.WaitlistBuilder) {
			b.Nombre = name
			b.Telefono = "+54 379 " + name
		}).BuildDomain(c)
		require.NoError(t, err)
		entries = append(entries, e)
	}
	require.NoError(t, repo.Save(ctx, entries))

	q := queries.NewWaitlistQueries(repo, art)

	t.Run("list in insertion order with positions", func(t *testing.T) {
		items, err := q.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, 0, items[0].Index)
		assert.Equal(t, "Ana", items[0].Nombre)
		assert.Equal(t, 1, items[1].Index)
		assert.Equal(t, "03/10/2025 18:30", items[0].FechaInscripcion)
		assert.Equal(t, "tel:+54 379 Ana", items[0].CallLink)
		assert.Equal(t, 1, items[0].Cancha)
	})

	t.Run("call link keeps the phone as stored", func(t *testing.T) {
		link, err := q.CallLink(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "tel:+54 379 Beto", link)
	})

	t.Run("unknown registration time shows a dash", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Set(ctx, repository.KeyWaitlist, []byte(
			`[{"nombre":"Ana","telefono":"1","fecha":"4 de octubre","hora":"20:00","cancha":2,"fechaInscripcion":""}]`,
		)))
		items, err := queries.NewWaitlistQueries(repository.NewWaitlistRepository(store, discard), art).List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "-", items[0].FechaInscripcion)
	})

	t.Run("call link out of range", func(t *testing.T) {
		_, err := q.CallLink(ctx, 2)
		assert.True(t, errs.Is(err, queries.ErrWaitlistEntryNotFound))
	})
}
