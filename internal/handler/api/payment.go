package api

import (
	"net/http"

	reqdto "sarmiento-f5/internal/handler/dto/request"
	resdto "sarmiento-f5/internal/handler/dto/response"
	"sarmiento-f5/internal/handler/httperr"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/usecase/commands"
	"sarmiento-f5/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.ReservationCommands
}

func NewPaymentHandler(cmds commands.ReservationCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Confirm payment
// @Description Simulated payment of the seña. Moves the pending reservation into history.
// @Tags payments
// @Produce json
// @Param monto query string true "Amount"
// @Param concepto query string true "Concept"
// @Param email query string true "Payer email"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var q reqdto.PaymentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortIncomplete(c, err, resdto.RedirectBooking)
		return
	}
	res, err := h.cmds.ConfirmPayment(c.Request.Context(), q.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidPayment):
			abortIncomplete(c, err, resdto.RedirectBooking)
		case errs.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithRedirect(c, http.StatusNotFound, err, resdto.MsgReservationError, resdto.RedirectBooking)
		default:
			abortUnexpected(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentResponse{
		Notice:      resdto.Notice{Message: resdto.MsgPaymentOK, Redirect: resdto.RedirectConfirmed},
		Reservation: resdto.FromReservationView(queries.ToReservationView(res)),
	})
}

// @Summary Cancel payment
// @Description Drop the pending reservation. Nothing is written to history.
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.Notice
// @Router /payments/cancel [post]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	if err := h.cmds.CancelPayment(c.Request.Context()); err != nil {
		abortUnexpected(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Notice{Message: resdto.MsgPaymentCancelled, Redirect: resdto.RedirectBooking})
}
