// README: Fare history handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabnav/internal/modules/history"
)

type HistoryHandler struct {
	history *history.Service
}

func NewHistoryHandler(svc *history.Service) *HistoryHandler {
	return &HistoryHandler{history: svc}
}

// Average handles GET /api/history/average?provider=&ride_type=.
func (h *HistoryHandler) Average(c *gin.Context) {
	providerName := c.Query("provider")
	rideType := c.Query("ride_type")
	if providerName == "" || rideType == "" {
		writeError(c, http.StatusBadRequest, "missing provider or ride_type")
		return
	}

	avg, err := h.history.AveragePrice(c.Request.Context(), providerName, rideType)
	if err != nil {
		writeHistoryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{
		"provider":  providerName,
		"ride_type": rideType,
		"average":   avg,
	})
}
