package api

import (
	"net/http"

	resdto "sarmiento-f5/internal/handler/dto/response"
	"sarmiento-f5/internal/handler/httperr"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const msgInternal = "Internal server error"

// abortUnexpected answers errors no handler maps explicitly. Store failures
// keep their own message so operators can tell them apart in the logs.
func abortUnexpected(c *gin.Context, err error) {
	if errs.Is(err, shared.ErrStoreUnavailable) {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Storage unavailable", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
}

func abortIncomplete(c *gin.Context, err error, redirect string) {
	if redirect != "" {
		httperr.AbortWithRedirect(c, http.StatusBadRequest, err, resdto.MsgIncompleteFields, redirect)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, resdto.MsgIncompleteFields, nil)
}
