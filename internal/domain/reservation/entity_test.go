//go:build unit

package reservation_test

import (
	"net/url"
	"testing"
	"time"

	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	now := time.Date(2025, time.October, 3, 18, 0, 0, 0, time.UTC)
	services := &reservation.Services{
		Clock:           clock.NewMockClock(now),
		PriceCalculator: reservation.NewDefaultPriceCalculator(),
	}

	t.Run("court 2 at 20:00 on a saturday", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain(services)
		require.NoError(t, err)

		assert.Equal(t, 18000, actual.Price().Amount())
		assert.Equal(t, 9000, actual.DownPayment().Amount())
		assert.Equal(t, 9000, actual.Remaining().Amount())
		assert.Equal(t, "4 de octubre", actual.Fecha())
		assert.Equal(t, "20:00", actual.Hora())
		assert.Equal(t, 2, actual.Court().Int())
		assert.False(t, actual.IsPaid())
		assert.Equal(t, now, actual.CreatedAt())
	})

	t.Run("contact validation", func(t *testing.T) {
		runCases(t, services, []testCase{
			{name: "missing name", mutate: func(b *builder.ReservationBuilder) { b.Nombre = "" }, errIs: reservation.ErrNameRequired},
			{name: "blank name", mutate: func(b *builder.ReservationBuilder) { b.Nombre = "   " }, errIs: reservation.ErrNameRequired},
			{name: "missing phone", mutate: func(b *builder.ReservationBuilder) { b.Telefono = "" }, errIs: reservation.ErrPhoneRequired},
			{name: "missing email", mutate: func(b *builder.ReservationBuilder) { b.Email = "" }, errIs: reservation.ErrEmailRequired},
			{name: "email format is not checked", mutate: func(b *builder.ReservationBuilder) { b.Email = "not-an-email" }},
		})
	})

	t.Run("availability follows the slot pattern", func(t *testing.T) {
		runCases(t, services, []testCase{
			{name: "court 1 at 20:00 is taken", mutate: func(b *builder.ReservationBuilder) { b.Cancha = 1 }, errIs: reservation.ErrCourtUnavailable},
			{name: "court 3 at 17:00 is taken", mutate: func(b *builder.ReservationBuilder) { b.Cancha, b.Hora = 3, "17:00" }, errIs: reservation.ErrCourtUnavailable},
			{name: "court 4 at 19:00 is taken", mutate: func(b *builder.ReservationBuilder) { b.Cancha, b.Hora = 4, "19:00" }, errIs: reservation.ErrCourtUnavailable},
			{name: "court 1 at 15:00 is free", mutate: func(b *builder.ReservationBuilder) { b.Cancha, b.Hora = 1, "15:00" }},
			{name: "court 1 at 01:00 is free", mutate: func(b *builder.ReservationBuilder) { b.Cancha, b.Hora = 1, "01:00" }},
		})
	})

	t.Run("mark paid once", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain(services)
		require.NoError(t, err)

		require.NoError(t, actual.MarkPaid())
		assert.True(t, actual.IsPaid())
		assert.ErrorIs(t, actual.MarkPaid(), reservation.ErrAlreadyPaid)
	})

	t.Run("payment request carries the seña", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain(services)
		require.NoError(t, err)

		req := actual.PaymentRequest()
		assert.Equal(t, 9000, req.Amount)
		assert.Equal(t, "Seña cancha 2 4 de octubre 20:00", req.Concept)
		assert.Equal(t, "lucia@example.com", req.Email)

		u, err := url.Parse(req.URL())
		require.NoError(t, err)
		assert.Equal(t, reservation.PaymentPath, u.Path)
		assert.Equal(t, "9000", u.Query().Get("monto"))
		assert.Equal(t, "Seña cancha 2 4 de octubre 20:00", u.Query().Get("concepto"))
		assert.Equal(t, "lucia@example.com", u.Query().Get("email"))
		assert.Contains(t, req.URL(), "concepto=Se%C3%B1a+cancha+2+4+de+octubre+20%3A00")
	})
}

func TestParsePaymentRequest(t *testing.T) {
	t.Run("all parameters present", func(t *testing.T) {
		req, err := reservation.ParsePaymentRequest("9000", "Seña cancha 2", "a@b.c")
		require.NoError(t, err)
		assert.Equal(t, reservation.PaymentRequest{Amount: 9000, Concept: "Seña cancha 2", Email: "a@b.c"}, req)
	})

	t.Run("missing parameters", func(t *testing.T) {
		for _, args := range [][3]string{
			{"", "c", "e"},
			{"1", "", "e"},
			{"1", "c", ""},
		} {
			_, err := reservation.ParsePaymentRequest(args[0], args[1], args[2])
			assert.ErrorIs(t, err, reservation.ErrPaymentParamsMissing)
		}
	})

	t.Run("amount must be numeric", func(t *testing.T) {
		_, err := reservation.ParsePaymentRequest("nueve mil", "c", "e")
		assert.ErrorIs(t, err, reservation.ErrInvalidAmount)
	})
}

func runCases(t *testing.T, services *reservation.Services, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain(services)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
