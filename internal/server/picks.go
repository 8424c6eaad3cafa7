package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/roci-emry/sports-betting/internal/store"
	"github.com/roci-emry/sports-betting/pkg/models"
)

// Refresher runs one poll cycle on demand
type Refresher interface {
	RunCycle(ctx context.Context) (*models.Snapshot, error)
}

// Broadcaster pushes a fresh snapshot to connected consumers
type Broadcaster interface {
	Broadcast(snapshot *models.Snapshot)
}

// PickHandler serves the latest pick snapshot and manual refreshes
type PickHandler struct {
	source      store.SnapshotSource
	refresher   Refresher
	broadcaster Broadcaster
}

// NewPickHandler creates a pick handler. refresher and broadcaster may be nil
// when the API runs without an embedded engine.
func NewPickHandler(source store.SnapshotSource, refresher Refresher, broadcaster Broadcaster) *PickHandler {
	return &PickHandler{
		source:      source,
		refresher:   refresher,
		broadcaster: broadcaster,
	}
}

type pickResponse struct {
	*models.Snapshot
	Updated string `json:"updated"`
}

// GetPicks returns the most recent snapshot, artifact-first. An empty store
// is "no data yet", reported as 404 rather than a server error.
func (h *PickHandler) GetPicks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	snapshot, err := h.source.LoadSnapshot(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load picks", err)
		return
	}

	if snapshot == nil {
		respondError(w, http.StatusNotFound, "no picks available yet", nil)
		return
	}

	respondJSON(w, http.StatusOK, pickResponse{
		Snapshot: snapshot,
		Updated:  TimeSinceUpdate(snapshot.GeneratedAt, time.Now()),
	})
}

// RefreshPicks runs a poll cycle immediately and returns the new snapshot
func (h *PickHandler) RefreshPicks(w http.ResponseWriter, r *http.Request) {
	if h.refresher == nil {
		respondError(w, http.StatusServiceUnavailable, "manual refresh not enabled", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	snapshot, err := h.refresher.RunCycle(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "refresh failed", err)
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.Broadcast(snapshot)
	}

	respondJSON(w, http.StatusOK, pickResponse{
		Snapshot: snapshot,
		Updated:  TimeSinceUpdate(snapshot.GeneratedAt, time.Now()),
	})
}

// TimeSinceUpdate renders a snapshot's age for display
func TimeSinceUpdate(generatedAt, now time.Time) string {
	if generatedAt.IsZero() {
		return "Never"
	}

	diff := now.Sub(generatedAt)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())

	switch {
	case mins < 5:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%d minutes ago", mins)
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	default:
		return fmt.Sprintf("%d days ago", hours/24)
	}
}
