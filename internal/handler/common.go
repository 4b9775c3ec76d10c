// Package handler is the thin HTTP glue over the service layer: bind,
// call, map errors. No business rules live here.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luvremak/db-coursework/internal/apperr"
	"github.com/luvremak/db-coursework/internal/logger"
	"github.com/luvremak/db-coursework/internal/model"
)

// respondError maps the taxonomy kind to an HTTP status; anything
// outside the taxonomy is a 500 with the stringified fallback message.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindAccessDenied:
		status = http.StatusForbidden
	case apperr.KindAlreadyExists:
		status = http.StatusConflict
	case apperr.KindInvalidCode:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(status, gin.H{"error": apperr.Display(err)})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

func queryInt64(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// pagination reads page/page_size/order_by/ascending from the query
// string; out-of-range values clamp to the defaults.
func pagination(c *gin.Context) model.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	orderBy := c.DefaultQuery("order_by", model.DefaultOrderBy)
	ascending := c.DefaultQuery("ascending", "true") != "false"
	return model.NewPagination(page, pageSize, orderBy, ascending)
}
