package server

import (
	"net/http"
	"time"

	"github.com/roci-emry/sports-betting/internal/rotation"
)

// SportHandler serves the current sport rotation and its season windows
type SportHandler struct {
	selector *rotation.Selector
}

// NewSportHandler creates a sport handler
func NewSportHandler(selector *rotation.Selector) *SportHandler {
	return &SportHandler{
		selector: selector,
	}
}

// GetTrackedSports returns the sports the rotation polls this month
func (h *SportHandler) GetTrackedSports(w http.ResponseWriter, r *http.Request) {
	month := time.Now().Month()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"month":  month.String(),
		"sports": h.selector.Schedule(month),
	})
}
