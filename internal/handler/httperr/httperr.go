package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint returns.
type Response struct {
	Status int               `json:"-"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Abort writes the error body and stops the handler chain. A non-nil err
// is attached to the gin error stack for the logging middleware.
func Abort(c *gin.Context, status int, err error, msg string) {
	resp := Response{Status: status, Error: msg}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
