package store

import (
	"context"

	"github.com/roci-emry/sports-betting/pkg/models"
)

// FanoutStore writes each snapshot to every target and reads from the first.
// The scheduled job uses it to publish the same cycle to the live store and
// the static artifact file in one call.
type FanoutStore struct {
	targets []SnapshotStore
}

// NewFanoutStore creates a fanout over the given targets; at least one is
// expected
func NewFanoutStore(targets ...SnapshotStore) *FanoutStore {
	return &FanoutStore{
		targets: targets,
	}
}

// StoreSnapshot writes the snapshot to every target, stopping on the first
// failure so a partial publish surfaces as a cycle error
func (s *FanoutStore) StoreSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	for _, target := range s.targets {
		if err := target.StoreSnapshot(ctx, snapshot); err != nil {
			return err
		}
	}
	return nil
}

// LoadSnapshot reads from the first target
func (s *FanoutStore) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	return s.targets[0].LoadSnapshot(ctx)
}
