package engine

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roci-emry/sports-betting/internal/analyzer"
	"github.com/roci-emry/sports-betting/internal/provider/oddsapi"
	"github.com/roci-emry/sports-betting/internal/rotation"
	"github.com/roci-emry/sports-betting/internal/store"
	"github.com/roci-emry/sports-betting/pkg/models"
)

// OddsProvider fetches the odds feed for one sport
type OddsProvider interface {
	FetchOdds(ctx context.Context, sportKey string) ([]oddsapi.Game, error)
}

// Engine runs one poll cycle: select the sport rotation, fetch each sport's
// odds, score every game, rank the candidates and store the snapshot.
type Engine struct {
	selector *rotation.Selector
	provider OddsProvider
	analyzer *analyzer.Analyzer
	store    store.SnapshotStore
	topLimit int
}

// New creates a poll-cycle engine
func New(
	selector *rotation.Selector,
	provider OddsProvider,
	an *analyzer.Analyzer,
	snapshots store.SnapshotStore,
	topLimit int,
) *Engine {
	return &Engine{
		selector: selector,
		provider: provider,
		analyzer: an,
		store:    snapshots,
		topLimit: topLimit,
	}
}

// RunCycle performs one full poll cycle and stores the resulting snapshot.
// A sport whose fetch fails contributes an error entry instead of picks and
// never aborts the rest of the cycle; the only fatal condition is a snapshot
// store failure.
func (e *Engine) RunCycle(ctx context.Context) (*models.Snapshot, error) {
	now := time.Now()
	sports := e.selector.TrackedSports(now.Month())

	log.Printf("cycle start: polling %d sports", len(sports))

	// Per-sport fetches are independent; each goroutine owns its slot, so
	// results concatenate in rotation order regardless of completion order.
	picksBySport := make([][]models.Pick, len(sports))
	errsBySport := make([]string, len(sports))

	var wg sync.WaitGroup
	for i, sport := range sports {
		wg.Add(1)
		go func(i int, sport models.Sport) {
			defer wg.Done()

			games, err := e.provider.FetchOdds(ctx, sport.Key)
			if err != nil {
				log.Printf("[%s] fetch failed: %v", sport.Key, err)
				errsBySport[i] = fmt.Sprintf("%s: %v", sport.Name, err)
				return
			}

			var picks []models.Pick
			for j := range games {
				picks = append(picks, e.analyzer.AnalyzeGame(&games[j])...)
			}

			log.Printf("[%s] %d games, %d candidates", sport.Key, len(games), len(picks))
			picksBySport[i] = picks
		}(i, sport)
	}
	wg.Wait()

	var candidates []models.Pick
	pollErrors := make([]string, 0)
	for i := range sports {
		candidates = append(candidates, picksBySport[i]...)
		if errsBySport[i] != "" {
			pollErrors = append(pollErrors, errsBySport[i])
		}
	}

	snapshot := &models.Snapshot{
		CycleID:       uuid.NewString(),
		Picks:         RankPicks(candidates, e.topLimit),
		GeneratedAt:   now,
		SportsChecked: rotation.SportNames(sports),
		Errors:        pollErrors,
		Month:         int(now.Month()),
	}

	if err := e.store.StoreSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}

	log.Printf("cycle done: %d candidates, %d published, %d errors",
		len(candidates), len(snapshot.Picks), len(pollErrors))

	return snapshot, nil
}
