package api

import (
	"net/http"

	resdto "sarmiento-f5/internal/handler/dto/response"
	"sarmiento-f5/internal/handler/httperr"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/usecase/queries"
	"sarmiento-f5/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	q queries.SlotQueries
}

func NewSlotHandler(q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary List slots
// @Description Slot table for a date with per-court availability and that day's price
// @Tags slots
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.DayScheduleResponse
// @Failure 400 {object} httperr.Response
// @Router /slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	view, err := h.q.ForDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errs.Is(err, shared.ErrInvalidDate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
			return
		}
		abortUnexpected(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDaySchedule(view))
}

// @Summary Today board
// @Description Fixed hour ranges for today with each court's status
// @Tags slots
// @Produce json
// @Success 200 {array} resdto.BoardRowResponse
// @Router /slots/today [get]
func (h *SlotHandler) Today(c *gin.Context) {
	rows, err := h.q.TodayBoard(c.Request.Context())
	if err != nil {
		abortUnexpected(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBoard(rows))
}
