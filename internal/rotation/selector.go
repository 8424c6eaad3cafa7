package rotation

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/roci-emry/sports-betting/pkg/models"
)

// DefaultMaxTrackedSports is the odds provider's request quota expressed as a
// sport count. The free API tier only affords polling this many sports per
// cycle, so the rotation selects exactly this many whenever the catalog can
// supply them.
const DefaultMaxTrackedSports = 8

// Config holds rotation configuration
type Config struct {
	MaxTrackedSports int
}

// NewConfig creates rotation configuration with defaults and environment overrides
func NewConfig() *Config {
	return &Config{
		MaxTrackedSports: getEnvInt("MAX_TRACKED_SPORTS", DefaultMaxTrackedSports),
	}
}

// Selector chooses which sports to poll each cycle. Selection is a pure
// function of (catalog, month): two calls within the same month always return
// identical, order-stable results.
type Selector struct {
	catalog []models.Sport
	limit   int
}

// NewSelector creates a selector over a priority-ordered catalog
func NewSelector(catalog []models.Sport, limit int) *Selector {
	return &Selector{
		catalog: catalog,
		limit:   limit,
	}
}

// TrackedSports returns the sports to poll for the given month, in catalog
// priority order. It returns exactly the configured limit when the catalog
// can supply that many, and whatever it collected otherwise; callers must
// tolerate a short set.
func (s *Selector) TrackedSports(month time.Month) []models.Sport {
	selected := make([]models.Sport, 0, s.limit)
	for _, sport := range s.catalog {
		if sport.InSeason(month) {
			selected = append(selected, sport)
		}
	}

	// More in season than the quota allows: keep the highest-priority entries
	if len(selected) >= s.limit {
		return selected[:s.limit]
	}

	// Short of the quota: pad from catalog entries not already selected,
	// year-round alternates first, then any remaining in-season ones
	alternates := s.unselected(selected)

	for _, sport := range alternates {
		if len(selected) >= s.limit {
			break
		}
		if sport.AllYear() {
			selected = append(selected, sport)
		}
	}

	for _, sport := range alternates {
		if len(selected) >= s.limit {
			break
		}
		if !sport.AllYear() && sport.InSeason(month) {
			selected = append(selected, sport)
		}
	}

	return selected
}

// SportNames returns the display names of the given sports
func SportNames(sports []models.Sport) []string {
	names := make([]string, len(sports))
	for i, sport := range sports {
		names[i] = sport.Name
	}
	return names
}

// unselected returns catalog entries not present in selected, preserving
// catalog order
func (s *Selector) unselected(selected []models.Sport) []models.Sport {
	var rest []models.Sport
	for _, sport := range s.catalog {
		if !containsKey(selected, sport.Key) {
			rest = append(rest, sport)
		}
	}
	return rest
}

func containsKey(sports []models.Sport, key string) bool {
	for _, sport := range sports {
		if sport.Key == key {
			return true
		}
	}
	return false
}

// ScheduleEntry describes one tracked sport's season window for display
type ScheduleEntry struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	MonthRange string `json:"monthRange"`
	InSeason   bool   `json:"inSeason"`
}

// Schedule returns season info for every sport the rotation would track in
// the given month
func (s *Selector) Schedule(month time.Month) []ScheduleEntry {
	tracked := s.TrackedSports(month)

	entries := make([]ScheduleEntry, len(tracked))
	for i, sport := range tracked {
		entries[i] = ScheduleEntry{
			Key:        sport.Key,
			Name:       sport.Name,
			MonthRange: monthRange(sport),
			InSeason:   sport.InSeason(month),
		}
	}
	return entries
}

func monthRange(sport models.Sport) string {
	if sport.AllYear() {
		return "Year-round"
	}

	names := make([]string, len(sport.Months))
	for i, m := range sport.Months {
		names[i] = m.String()[:3]
	}
	return strings.Join(names, ", ")
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
