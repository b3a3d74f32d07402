package api

import (
	"net/http"

	resdto "sarmiento-f5/internal/handler/dto/response"
	"sarmiento-f5/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	q queries.ContactQueries
}

func NewContactHandler(q queries.ContactQueries) *ContactHandler {
	return &ContactHandler{q: q}
}

// @Summary Contact links
// @Tags contact
// @Produce json
// @Success 200 {object} resdto.ContactResponse
// @Router /contact [get]
func (h *ContactHandler) Links(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromContactView(h.q.Links(c.Request.Context())))
}
