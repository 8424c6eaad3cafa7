package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/roci-emry/sports-betting/pkg/models"
)

// ArtifactReader reads the published picks artifact over HTTP, falling back
// to a local snapshot store when the artifact is unreachable. The artifact
// and the store hold the same snapshot; this is one read interface over two
// backings selected by availability.
type ArtifactReader struct {
	url        string
	fallback   SnapshotSource
	httpClient *http.Client
}

// NewArtifactReader creates an artifact-first snapshot source. An empty URL
// disables the artifact fetch and reads go straight to the fallback.
func NewArtifactReader(url string, fallback SnapshotSource) *ArtifactReader {
	return &ArtifactReader{
		url:      url,
		fallback: fallback,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// LoadSnapshot returns the published artifact if it can be fetched, otherwise
// whatever the fallback store holds
func (r *ArtifactReader) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	if r.url != "" {
		snapshot, err := r.fetch(ctx)
		if err == nil {
			return snapshot, nil
		}
		log.Printf("artifact fetch failed, falling back to store: %v", err)
	}

	if r.fallback == nil {
		return nil, nil
	}
	return r.fallback.LoadSnapshot(ctx)
}

func (r *ArtifactReader) fetch(ctx context.Context) (*models.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("artifact fetch: status %d", resp.StatusCode)
	}

	var snapshot models.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decoding artifact: %w", err)
	}

	return &snapshot, nil
}
