// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cabnav/internal/modules/compare"
	"cabnav/internal/modules/history"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeCompareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, compare.ErrNoQuotes):
		writeError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, compare.ErrTimeout):
		writeError(c, http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, compare.ErrBookingFailed):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeHistoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, history.ErrNoHistory):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
