package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ediworks-controlplane/pkg/errutil"
)

// Error translates errors pushed onto the gin context into JSON responses.
// Typed errors map through their CoreStatus; anything else is INTERNAL.
func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		var be errutil.BaseError
		if errors.As(last.Err, &be) {
			c.JSON(be.Code.HTTPStatus(), be.JSON())
			return
		}

		fallback := errutil.BaseError{Code: errutil.StatusInternal, Message: "internal error"}
		c.JSON(http.StatusInternalServerError, fallback.JSON())
	}
}
