package engine

import (
	"os"
	"sort"
	"strconv"

	"github.com/roci-emry/sports-betting/pkg/models"
)

// DefaultTopPicksLimit caps how many picks a snapshot publishes
const DefaultTopPicksLimit = 5

// Config holds engine configuration
type Config struct {
	TopPicksLimit int
}

// NewConfig creates engine configuration with defaults and environment overrides
func NewConfig() *Config {
	return &Config{
		TopPicksLimit: getEnvInt("TOP_PICKS_LIMIT", DefaultTopPicksLimit),
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// RankPicks orders candidates by descending expected value and truncates to
// limit. The sort is stable: candidates with equal EV keep their discovery
// order. Admission filtering already happened at analysis time; ranking only
// sorts and cuts.
func RankPicks(picks []models.Pick, limit int) []models.Pick {
	ranked := make([]models.Pick, len(picks))
	copy(ranked, picks)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EV > ranked[j].EV
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
