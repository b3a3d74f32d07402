//go:build unit

package waitlist_test

import (
	"testing"
	"time"

	"sarmiento-f5/internal/domain/waitlist"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.WaitlistBuilder)
	errIs  error
}

func TestEntry(t *testing.T) {
	now := time.Date(2025, time.October, 3, 18, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(now)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewWaitlistBuilder().BuildDomain(c)
		require.NoError(t, err)

		assert.Equal(t, "Martín Acosta", actual.Name())
		assert.Equal(t, "3794 55-1234", actual.Phone())
		assert.Equal(t, "4 de octubre", actual.Fecha())
		assert.Equal(t, "20:00", actual.Hora())
		assert.Equal(t, 1, actual.Court().Int())
		assert.Equal(t, now, actual.RegisteredAt())
		assert.Equal(t, "tel:3794 55-1234", actual.CallLink())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, c, []testCase{
			{name: "missing name", mutate: func(b *builder.WaitlistBuilder) { b.Nombre = "" }, errIs: waitlist.ErrNameRequired},
			{name: "blank phone", mutate: func(b *builder.WaitlistBuilder) { b.Telefono = " " }, errIs: waitlist.ErrPhoneRequired},
			{name: "free court cannot be waitlisted", mutate: func(b *builder.WaitlistBuilder) { b.Cancha = 2 }, errIs: waitlist.ErrCourtAvailable},
			{name: "court 3 at 17:00 is taken", mutate: func(b *builder.WaitlistBuilder) { b.Cancha, b.Hora = 3, "17:00" }},
		})
	})
}

func TestSequence(t *testing.T) {
	c := clock.NewMockClock(time.Date(2025, time.October, 3, 18, 0, 0, 0, time.UTC))
	newEntry := func(name string) *waitlist.Entry {
		e, err := builder.NewWaitlistBuilder().With(func(b *builder.WaitlistBuilder) { b.Nombre = name }).BuildDomain(c)
		require.NoError(t, err)
		return e
	}

	t.Run("append always grows by one, duplicates included", func(t *testing.T) {
		var entries []*waitlist.Entry
		for i := 1; i <= 3; i++ {
			entries = waitlist.Append(entries, newEntry("Ana"))
			assert.Len(t, entries, i)
		}
	})

	t.Run("remove at splices the displayed row", func(t *testing.T) {
		entries := []*waitlist.Entry{newEntry("Ana"), newEntry("Beto"), newEntry("Caro")}

		out, removed, err := waitlist.RemoveAt(entries, 1)
		require.NoError(t, err)

		assert.Equal(t, "Beto", removed.Name())
		require.Len(t, out, 2)
		assert.Equal(t, "Ana", out[0].Name())
		assert.Equal(t, "Caro", out[1].Name())
		assert.Len(t, entries, 3, "input is not modified")
	})

	t.Run("out of range positions", func(t *testing.T) {
		entries := []*waitlist.Entry{newEntry("Ana")}
		for _, idx := range []int{-1, 1, 5} {
			_, _, err := waitlist.RemoveAt(entries, idx)
			assert.ErrorIs(t, err, waitlist.ErrIndexOutOfRange)

			_, err = waitlist.At(entries, idx)
			assert.ErrorIs(t, err, waitlist.ErrIndexOutOfRange)
		}
	})
}

func runCases(t *testing.T, c clock.Clock, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := builder.NewWaitlistBuilder().With(tc.mutate).BuildDomain(c)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
