package api

import (
	"net/http"

	"sarmiento-f5/internal/domain/rivals"
	reqdto "sarmiento-f5/internal/handler/dto/request"
	resdto "sarmiento-f5/internal/handler/dto/response"
	"sarmiento-f5/internal/handler/httperr"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/usecase/commands"
	"sarmiento-f5/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RivalsHandler struct {
	cmds commands.RivalsCommands
	q    queries.RivalsQueries
}

func NewRivalsHandler(cmds commands.RivalsCommands, q queries.RivalsQueries) *RivalsHandler {
	return &RivalsHandler{cmds: cmds, q: q}
}

// @Summary Search listings
// @Description Teams looking for rivals and players looking for a team. Facets are repeatable.
// @Tags rivals
// @Produce json
// @Param q query string false "Text on name or location"
// @Param type query string false "all, team or player"
// @Param level query []string false "Levels" collectionFormat(multi)
// @Param location query []string false "Locations" collectionFormat(multi)
// @Param day query []string false "Days" collectionFormat(multi)
// @Param time query []string false "Times of day" collectionFormat(multi)
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Router /rivals [get]
func (h *RivalsHandler) Search(c *gin.Context) {
	var q reqdto.SearchRivalsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}
	views, err := h.q.Search(c.Request.Context(), q.ToParams())
	if err != nil {
		if errs.Is(err, queries.ErrInvalidFilter) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
			return
		}
		abortUnexpected(c, err)
		return
	}
	resp, err := resdto.FromListingViews(views)
	if err != nil {
		abortUnexpected(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Filter options
// @Tags rivals
// @Produce json
// @Success 200 {object} resdto.FilterOptionsResponse
// @Router /rivals/options [get]
func (h *RivalsHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromFilterOptions(h.q.Options(c.Request.Context())))
}

// @Summary Preview listing
// @Description Validate a draft and echo it back. Nothing is stored.
// @Tags rivals
// @Accept json
// @Produce json
// @Param request body reqdto.ListingRequest true "Listing form"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Router /rivals/preview [post]
func (h *RivalsHandler) Preview(c *gin.Context) {
	var req reqdto.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	l, err := h.cmds.Preview(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortListing(c, err)
		return
	}
	h.respondListing(c, http.StatusOK, l, nil)
}

// @Summary Publish listing
// @Tags rivals
// @Accept json
// @Produce json
// @Param request body reqdto.ListingRequest true "Listing form"
// @Success 201 {object} resdto.PublishResponse
// @Failure 400 {object} httperr.Response
// @Router /rivals [post]
func (h *RivalsHandler) Publish(c *gin.Context) {
	var req reqdto.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	l, err := h.cmds.Publish(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortListing(c, err)
		return
	}
	h.respondListing(c, http.StatusCreated, l, &resdto.Notice{Message: resdto.MsgListingPublished})
}

func (h *RivalsHandler) respondListing(c *gin.Context, status int, l rivals.Listing, notice *resdto.Notice) {
	resp, err := resdto.FromListingView(h.q.View(l))
	if err != nil {
		abortUnexpected(c, err)
		return
	}
	if notice == nil {
		c.JSON(status, resp)
		return
	}
	c.JSON(status, resdto.PublishResponse{Notice: *notice, Listing: resp})
}

func abortListing(c *gin.Context, err error) {
	var verr *rivals.ValidationError
	switch {
	case errs.As(err, &verr):
		fields := make(map[string]string, len(verr.Fields))
		for _, f := range verr.Fields {
			if _, seen := fields[f.Field]; !seen {
				fields[f.Field] = f.Message
			}
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Revisá los datos de la publicación", gin.H{"fields": fields})
	case errs.Is(err, commands.ErrInvalidListingType):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing type", nil)
	default:
		abortUnexpected(c, err)
	}
}
