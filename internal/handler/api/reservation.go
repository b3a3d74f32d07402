package api

import (
	"net/http"

	"sarmiento-f5/internal/domain/reservation"
	reqdto "sarmiento-f5/internal/handler/dto/request"
	resdto "sarmiento-f5/internal/handler/dto/response"
	"sarmiento-f5/internal/handler/httperr"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/usecase/commands"
	"sarmiento-f5/internal/usecase/queries"
	"sarmiento-f5/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Quote reservation
// @Description Price a booking and return the pending snapshot without storing it
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking form"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/quote [post]
func (h *ReservationHandler) Quote(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Quote(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.abortBooking(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(queries.ToReservationView(res)))
}

// @Summary Checkout reservation
// @Description Store the pending reservation and return the payment redirect
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking form"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations/checkout [post]
func (h *ReservationHandler) Checkout(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Checkout(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.abortBooking(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckout(result))
}

// @Summary Last confirmed reservation
// @Tags reservations
// @Produce json
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/confirmation [get]
func (h *ReservationHandler) Confirmation(c *gin.Context) {
	view, err := h.q.Confirmation(c.Request.Context())
	if err != nil {
		h.abortConfirmation(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Confirmation receipt
// @Description PDF of the last confirmed reservation with a signed QR code
// @Tags reservations
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Router /reservations/confirmation/receipt [get]
func (h *ReservationHandler) Receipt(c *gin.Context) {
	doc, err := h.q.Receipt(c.Request.Context())
	if err != nil {
		h.abortConfirmation(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc.PDF)
}

// @Summary Reservation history
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /admin/reservations [get]
func (h *ReservationHandler) History(c *gin.Context) {
	views, err := h.q.History(c.Request.Context())
	if err != nil {
		abortUnexpected(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) abortBooking(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrIncompleteFields):
		abortIncomplete(c, err, "")
	case errs.Is(err, reservation.ErrCourtUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "La cancha no está disponible en ese horario", nil)
	case errs.Is(err, commands.ErrInvalidSlot), errs.Is(err, shared.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot", nil)
	default:
		abortUnexpected(c, err)
	}
}

func (h *ReservationHandler) abortConfirmation(c *gin.Context, err error) {
	if errs.Is(err, queries.ErrNoConfirmedReservation) {
		httperr.AbortWithError(c, http.StatusNotFound, err, resdto.MsgNoConfirmation, nil)
		return
	}
	abortUnexpected(c, err)
}
