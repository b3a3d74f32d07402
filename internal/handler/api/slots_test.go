//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"sarmiento-f5/internal/handler/api"
	resdto "sarmiento-f5/internal/handler/dto/response"
	"sarmiento-f5/internal/pkg/config"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/usecase/queries"
	"sarmiento-f5/internal/usecase/shared"
	"sarmiento-f5/tests/common/httptest"
	queriesmock "sarmiento-f5/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSlotQueries
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	handler := api.NewSlotHandler(s.mockQueries)
	contact := api.NewContactHandler(queries.NewContactQueries(config.NewTestConfig().Contact))

	s.router.GET("/slots", handler.List)
	s.router.GET("/slots/today", handler.Today)
	s.router.GET("/contact", contact.Links)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestList() {
	s.Run("success: passes the date through", func() {
		view := &queries.DayScheduleView{
			Date:  "2025-10-04",
			Fecha: "4 de octubre",
			Slots: []queries.SlotView{{
				ID: "slot-20", Time: "20:00", Available: true, Price: 18000, DownPayment: 9000,
				Courts: []queries.CourtView{{Court: 1, Available: false}, {Court: 2, Available: true}},
			}},
		}
		s.mockQueries.EXPECT().ForDate(gomock.Any(), "2025-10-04").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=2025-10-04", nil)

		var body resdto.DayScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("4 de octubre", body.Fecha)
		s.Require().Len(body.Slots, 1)
		s.Equal(9000, body.Slots[0].Sena)
		s.False(body.Slots[0].Canchas[0].Disponible)
	})

	s.Run("error: 400 on a malformed date", func() {
		s.mockQueries.EXPECT().ForDate(gomock.Any(), "04/10/2025").
			Return(nil, errs.Mark(errs.New("parse"), shared.ErrInvalidDate)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=04/10/2025", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

func (s *SlotHandlerTestSuite) TestToday() {
	rows := []*queries.BoardRowView{{
		Range: "15:00 - 16:00",
		Cells: []queries.BoardCellView{
			{Court: 1, Status: "disponible", Bookable: true},
			{Court: 2, Status: "reservado", Bookable: false},
		},
	}}
	s.mockQueries.EXPECT().TodayBoard(gomock.Any()).Return(rows, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/today", nil)

	var body []resdto.BoardRowResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal(resdto.RedirectBooking, body[0].Canchas[0].Redirect)
	s.Empty(body[0].Canchas[1].Redirect)
}

func (s *SlotHandlerTestSuite) TestContact() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/contact", nil)

	var body resdto.ContactResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("https://wa.me/+543795165059", body.WhatsApp)
	s.NotEmpty(body.Maps)
}
