//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/handler/api"
	resdto "sarmiento-f5/internal/handler/dto/response"
	"sarmiento-f5/internal/infra/receipt"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/usecase/commands"
	"sarmiento-f5/internal/usecase/queries"
	"sarmiento-f5/internal/usecase/shared"
	"sarmiento-f5/tests/common/builder"
	"sarmiento-f5/tests/common/httptest"
	"sarmiento-f5/tests/common/testutil"
	commandsmock "sarmiento-f5/tests/mock/commands"
	queriesmock "sarmiento-f5/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var createdAt = time.Date(2025, time.October, 3, 21, 0, 0, 0, time.UTC)

func buildReservation(t *testing.T, mutate func(*builder.ReservationBuilder)) *reservation.Reservation {
	t.Helper()
	b := builder.NewReservationBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	res, err := b.BuildDomain(&reservation.Services{
		Clock:           clock.NewMockClock(createdAt),
		PriceCalculator: reservation.NewDefaultPriceCalculator(),
	})
	if err != nil {
		t.Fatalf("build reservation: %v", err)
	}
	return res
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations/quote", s.handler.Quote)
	s.router.POST("/reservations/checkout", s.handler.Checkout)
	s.router.GET("/reservations/confirmation", s.handler.Confirmation)
	s.router.GET("/reservations/confirmation/receipt", s.handler.Receipt)
	s.router.GET("/admin/reservations", s.handler.History)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *ReservationHandlerTestSuite) TestQuote() {
	url := "/reservations/quote"
	reqBody := builder.NewReservationBuilder().BuildRequestDTO()

	s.Run("success: returns the priced snapshot", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), reqBody.ToCommand()).
			Return(buildReservation(s.T(), nil), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(18000, body.Precio)
		s.Equal(9000, body.Sena)
		s.Equal(9000, body.Restante)
		s.False(body.Pagado)
		s.Equal("4 de octubre", body.Fecha)
		s.Equal(reservation.ArrivalNote, body.Nota)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: hora (required)", mutate: testutil.Field("hora", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: cancha (required)", mutate: testutil.Field("cancha", nil), expectCode: http.StatusBadRequest},
			{name: "cancha boundary invalid (0)", mutate: testutil.Field("cancha", 0), expectCode: http.StatusBadRequest},
			{name: "cancha boundary invalid (5)", mutate: testutil.Field("cancha", 5), expectCode: http.StatusBadRequest},
			{name: "cancha wrong type", mutate: testutil.Field("cancha", "dos"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 400 Campos incompletos when contact fields are blank", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(reservation.ErrEmailRequired, commands.ErrIncompleteFields)).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Blank("email"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, resdto.MsgIncompleteFields)
	})

	s.Run("error: 409 Conflict when the court is taken", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, reservation.ErrCourtUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no está disponible")
	})

	s.Run("error: 400 Bad Request on an unknown slot or date", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("bad"), shared.ErrInvalidDate)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid slot")
	})
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCheckout() {
	url := "/reservations/checkout"
	reqBody := builder.NewReservationBuilder().BuildRequestDTO()

	s.Run("success: returns the payment redirect and its parts", func() {
		res := buildReservation(s.T(), nil)
		s.mockCommands.EXPECT().Checkout(gomock.Any(), reqBody.ToCommand()).
			Return(&commands.CheckoutResult{Reservation: res, Payment: res.PaymentRequest()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(strings.HasPrefix(body.Redirect, "/procesar-pago?monto=9000&concepto=Se"), body.Redirect)
		s.Equal(9000, body.Monto)
		s.Equal("lucia@example.com", body.Email)
		s.Equal(res.Concept(), body.Concepto)
		s.Equal(18000, body.Reservation.Precio)
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("redis down"), shared.ErrStoreUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Storage unavailable")
	})
}

// ================================================================================
// TestConfirmation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestConfirmation() {
	url := "/reservations/confirmation"

	s.Run("success: returns the last paid reservation", func() {
		res := buildReservation(s.T(), nil)
		s.Require().NoError(res.MarkPaid())
		s.mockQueries.EXPECT().Confirmation(gomock.Any()).
			Return(queries.ToReservationView(res), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Pagado)
		s.Equal(9000, body.Restante)
		s.Contains(body.Nota, "15 minutos antes")
	})

	s.Run("error: 404 with an empty history", func() {
		s.mockQueries.EXPECT().Confirmation(gomock.Any()).
			Return(nil, queries.ErrNoConfirmedReservation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, resdto.MsgNoConfirmation)
	})
}

// ================================================================================
// TestReceipt
// ================================================================================

func (s *ReservationHandlerTestSuite) TestReceipt() {
	url := "/reservations/confirmation/receipt"

	s.Run("success: serves the PDF as an attachment", func() {
		id := uuid.New()
		doc := &receipt.Document{ID: id, Filename: "reserva-" + id.String() + ".pdf", PDF: []byte("%PDF-1.3 test")}
		s.mockQueries.EXPECT().Receipt(gomock.Any()).Return(doc, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        "application/pdf",
			"Content-Disposition": `attachment; filename="` + doc.Filename + `"`,
		})
		s.Equal(doc.PDF, rec.Body.Bytes())
	})

	s.Run("error: 404 with an empty history", func() {
		s.mockQueries.EXPECT().Receipt(gomock.Any()).
			Return(nil, queries.ErrNoConfirmedReservation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, resdto.MsgNoConfirmation)
	})
}

// ================================================================================
// TestHistory
// ================================================================================

func (s *ReservationHandlerTestSuite) TestHistory() {
	s.Run("success: keeps history order", func() {
		first := buildReservation(s.T(), nil)
		second := buildReservation(s.T(), func(b *builder.ReservationBuilder) { b.Cancha = 3 })
		s.mockQueries.EXPECT().History(gomock.Any()).
			Return([]*queries.ReservationView{queries.ToReservationView(first), queries.ToReservationView(second)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations", nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(2, body[0].Cancha)
		s.Equal(3, body[1].Cancha)
	})
}
