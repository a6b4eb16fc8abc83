package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Dhoini/Tims-microservice/pkg/logger"
)

// PagingDefaults are applied when paged endpoints receive omitted or
// non-numeric query parameters.
type PagingDefaults struct {
	PageNumber int
	PageSize   int
}

// pagedParams parses pageNumber and pageSize from the query string.
// Omitted, non-numeric or non-positive values fall back to the
// defaults.
func pagedParams(c *gin.Context, defaults PagingDefaults) (int, int) {
	pageNumber := queryInt(c, "pageNumber", defaults.PageNumber)
	pageSize := queryInt(c, "pageSize", defaults.PageSize)
	return pageNumber, pageSize
}

// queryInt parses one positive integer query parameter
func queryInt(c *gin.Context, key string, defaultValue int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}

// serverError logs the failure and writes the generic 500 response.
// The error detail is exposed only in development mode.
func serverError(c *gin.Context, log *logger.Logger, message string, err error, dev bool) {
	log.Error("%s: %v", message, err)

	body := gin.H{"message": message}
	if dev && err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
