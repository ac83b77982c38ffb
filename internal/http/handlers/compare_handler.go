// README: Compare/book handlers for the HTTP API.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cabnav/internal/modules/compare"
	"cabnav/internal/modules/location"
	"cabnav/internal/modules/prefs"
)

type CompareHandler struct {
	orchestrator *compare.Orchestrator
	extractor    *prefs.Extractor
}

func NewCompareHandler(orchestrator *compare.Orchestrator, extractor *prefs.Extractor) *CompareHandler {
	return &CompareHandler{orchestrator: orchestrator, extractor: extractor}
}

type compareReq struct {
	// Text is a free-form request; when set, preferences are extracted
	// from it and Destination/Preferences act as overrides.
	Text        string                 `json:"text"`
	Pickup      string                 `json:"pickup"`
	Destination string                 `json:"destination"`
	Preferences *prefs.RidePreferences `json:"preferences"`
	Providers   []string               `json:"providers"`
}

// resolve turns a request body into pickup, destination and preferences.
func (req *compareReq) resolve(extractor *prefs.Extractor) (string, string, prefs.RidePreferences, bool) {
	var p prefs.RidePreferences
	switch {
	case req.Preferences != nil:
		p = *req.Preferences
		if p.RideType == "" {
			p.RideType = prefs.RideCar
		}
		if p.Passengers <= 0 {
			p.Passengers = 1
		}
		if p.AC == "" {
			p.AC = prefs.ACUnspecified
		}
	case strings.TrimSpace(req.Text) != "":
		p = extractor.Extract(req.Text)
	default:
		return "", "", p, false
	}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		destination = p.Destination
	}
	if destination == "" {
		return "", "", p, false
	}

	pickup := strings.TrimSpace(req.Pickup)
	if pickup == "" {
		pickup = "Current Location"
	}
	return location.Normalize(pickup), location.Normalize(destination), p, true
}

// Compare handles POST /api/compare.
func (h *CompareHandler) Compare(c *gin.Context) {
	var req compareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	pickup, destination, p, ok := req.resolve(h.extractor)
	if !ok {
		writeError(c, http.StatusBadRequest, "missing destination (set text or destination)")
		return
	}

	result, err := h.orchestrator.ComparePrices(c.Request.Context(), pickup, destination, p, req.Providers)
	if err != nil {
		writeCompareError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}

// Book handles POST /api/book: compares, then books the winner.
func (h *CompareHandler) Book(c *gin.Context) {
	var req compareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	pickup, destination, p, ok := req.resolve(h.extractor)
	if !ok {
		writeError(c, http.StatusBadRequest, "missing destination (set text or destination)")
		return
	}

	booking, err := h.orchestrator.BookCheapest(c.Request.Context(), pickup, destination, p, nil)
	if err != nil {
		writeCompareError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, booking)
}
