// Package httperr writes the error body every endpoint shares:
// {"error":{"message":...},"detail":...}.
package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// RedirectDetail tells the client which page to go back to after showing
// the error.
type RedirectDetail struct {
	Redirect string `json:"redirect"`
}

// AbortWithError keeps err on the context so the error middleware can log
// the full chain, and answers with msg only.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func AbortWithRedirect(c *gin.Context, status int, err error, msg, path string) {
	AbortWithError(c, status, err, msg, RedirectDetail{Redirect: path})
}
