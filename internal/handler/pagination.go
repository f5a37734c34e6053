package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseWindow reads the from/size listing window, defaulting to the
// first ten entries and guarding against nonsense values.
func parseWindow(c *gin.Context) (from, size int) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		from = 0
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 || size > 100 {
		size = 10
	}
	return from, size
}
