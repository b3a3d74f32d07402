package api

import (
	"fmt"
	"net/http"

	"sarmiento-f5/internal/domain/waitlist"
	reqdto "sarmiento-f5/internal/handler/dto/request"
	resdto "sarmiento-f5/internal/handler/dto/response"
	"sarmiento-f5/internal/handler/httperr"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/usecase/commands"
	"sarmiento-f5/internal/usecase/queries"
	"sarmiento-f5/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type WaitlistHandler struct {
	cmds commands.WaitlistCommands
	q    queries.WaitlistQueries
}

func NewWaitlistHandler(cmds commands.WaitlistCommands, q queries.WaitlistQueries) *WaitlistHandler {
	return &WaitlistHandler{cmds: cmds, q: q}
}

// @Summary Join waitlist
// @Description Ask to be called back if an occupied court frees up
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body reqdto.JoinWaitlistRequest true "Waitlist form"
// @Success 201 {object} resdto.Notice
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /waitlist [post]
func (h *WaitlistHandler) Join(c *gin.Context) {
	var req reqdto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	entry, err := h.cmds.Join(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrIncompleteFields):
			abortIncomplete(c, err, "")
		case errs.Is(err, waitlist.ErrCourtAvailable):
			httperr.AbortWithRedirect(c, http.StatusConflict, err, "La cancha está disponible, puede reservarla", resdto.RedirectBooking)
		case errs.Is(err, commands.ErrInvalidSlot), errs.Is(err, shared.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot", nil)
		default:
			abortUnexpected(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.Notice{
		Message:     resdto.MsgWaitlistJoined,
		Description: fmt.Sprintf("Te avisaremos si se libera la cancha %d el %s a las %s.", entry.Court().Int(), entry.Fecha(), entry.Hora()),
	})
}

// @Summary List waitlist
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.WaitlistItemResponse
// @Router /admin/waitlist [get]
func (h *WaitlistHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		abortUnexpected(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWaitlistItems(items))
}

// @Summary Delete waitlist entry
// @Tags admin
// @Produce json
// @Param index path int true "Position in the list"
// @Success 200 {object} resdto.Notice
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/waitlist/{index} [delete]
func (h *WaitlistHandler) Delete(c *gin.Context) {
	index, ok := bindIndex(c)
	if !ok {
		return
	}
	if _, err := h.cmds.Remove(c.Request.Context(), index); err != nil {
		abortWaitlistEntry(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Notice{Message: resdto.MsgWaitlistRemoved})
}

// @Summary Mark waitlist entry as contacted
// @Description Acknowledgement only. The entry is left unchanged.
// @Tags admin
// @Produce json
// @Param index path int true "Position in the list"
// @Success 200 {object} resdto.Notice
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/waitlist/{index}/contacted [post]
func (h *WaitlistHandler) MarkContacted(c *gin.Context) {
	index, ok := bindIndex(c)
	if !ok {
		return
	}
	entry, err := h.cmds.MarkContacted(c.Request.Context(), index)
	if err != nil {
		abortWaitlistEntry(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Notice{Message: fmt.Sprintf("Has marcado a %s como contactado.", entry.Name())})
}

// @Summary Call link
// @Tags admin
// @Produce json
// @Param index path int true "Position in the list"
// @Success 200 {object} resdto.CallLinkResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/waitlist/{index}/call [get]
func (h *WaitlistHandler) Call(c *gin.Context) {
	index, ok := bindIndex(c)
	if !ok {
		return
	}
	href, err := h.q.CallLink(c.Request.Context(), index)
	if err != nil {
		abortWaitlistEntry(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CallLinkResponse{Href: href})
}

func bindIndex(c *gin.Context) (int, bool) {
	var uri reqdto.WaitlistIndexURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid index", nil)
		return 0, false
	}
	return *uri.Index, true
}

func abortWaitlistEntry(c *gin.Context, err error) {
	if errs.Is(err, commands.ErrWaitlistEntryNotFound) || errs.Is(err, queries.ErrWaitlistEntryNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Entry not found", nil)
		return
	}
	abortUnexpected(c, err)
}
