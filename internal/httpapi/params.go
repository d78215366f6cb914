package httpapi

import (
	"strconv"

	"campus-rewards/pkg/errutil"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id path segment, rejecting non-numeric and
// non-positive identifiers before they reach a service.
func pathID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errutil.BadRequest("invalid id: " + raw)
	}
	return id, nil
}
