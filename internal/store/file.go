package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/roci-emry/sports-betting/pkg/models"
)

// FileStore writes the snapshot to a JSON file. The scheduled job uses it to
// publish the static picks artifact that display consumers fetch; it can also
// serve as a zero-dependency local snapshot store.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed snapshot store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

// StoreSnapshot writes the snapshot file, replacing any prior artifact
func (s *FileStore) StoreSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating artifact dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}
	return nil
}

// LoadSnapshot reads the snapshot file, or nil if it has never been written
func (s *FileStore) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading artifact: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshaling artifact: %w", err)
	}

	return &snapshot, nil
}
