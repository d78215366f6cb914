package middleware

import (
	"errors"
	"net/http"

	"campus-rewards/pkg/errutil"

	"github.com/gin-gonic/gin"
)

// Error maps domain errors attached to the gin context onto JSON responses.
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

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    errutil.StatusInternal,
				"message": last.Error(),
			},
		})
	}
}
