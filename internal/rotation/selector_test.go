package rotation_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/roci-emry/sports-betting/internal/rotation"
	"github.com/roci-emry/sports-betting/pkg/models"
)

func TestTrackedSportsCountByMonth(t *testing.T) {
	selector := rotation.NewSelector(rotation.Catalog, rotation.DefaultMaxTrackedSports)

	// The summer months can't fill the quota even after padding: most of the
	// catalog is dormant and the year-round alternates are already selected.
	// Every other month has enough in season to fill all 8 slots.
	want := map[time.Month]int{
		time.June:   7,
		time.July:   6,
		time.August: 7,
	}

	for month := time.January; month <= time.December; month++ {
		expected, short := want[month]
		if !short {
			expected = rotation.DefaultMaxTrackedSports
		}

		tracked := selector.TrackedSports(month)
		if len(tracked) != expected {
			t.Errorf("month %s: got %d sports, want %d", month, len(tracked), expected)
		}
		if len(tracked) > rotation.DefaultMaxTrackedSports {
			t.Errorf("month %s: selection exceeds the quota", month)
		}
	}
}

func TestTrackedSportsNoDuplicates(t *testing.T) {
	selector := rotation.NewSelector(rotation.Catalog, rotation.DefaultMaxTrackedSports)

	for month := time.January; month <= time.December; month++ {
		seen := make(map[string]bool)
		for _, sport := range selector.TrackedSports(month) {
			if seen[sport.Key] {
				t.Errorf("month %s: duplicate sport %s", month, sport.Key)
			}
			seen[sport.Key] = true
		}
	}
}

func TestTrackedSportsIdempotent(t *testing.T) {
	selector := rotation.NewSelector(rotation.Catalog, rotation.DefaultMaxTrackedSports)

	for month := time.January; month <= time.December; month++ {
		first := selector.TrackedSports(month)
		second := selector.TrackedSports(month)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("month %s: repeated selection differs", month)
		}
	}
}

func TestTrackedSportsPriorityOrder(t *testing.T) {
	selector := rotation.NewSelector(rotation.Catalog, rotation.DefaultMaxTrackedSports)

	// December has eleven sports in season; the first 8 in catalog priority
	// order win and MLB, WNBA and MLS sit out.
	tracked := selector.TrackedSports(time.December)

	want := []string{"basketball_nba", "icehockey_nhl", "basketball_ncaab", "soccer_epl", "tennis_atp", "americanfootball_nfl", "americanfootball_ncaaf", "golf_masters_tournament_winner"}
	got := make([]string, len(tracked))
	for i, sport := range tracked {
		got[i] = sport.Key
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("December selection = %v, want %v", got, want)
	}
}

func TestTrackedSportsTruncatesExcess(t *testing.T) {
	catalog := []models.Sport{
		{Key: "a", Name: "A", Months: []time.Month{time.June}},
		{Key: "b", Name: "B", Months: []time.Month{time.June}},
		{Key: "c", Name: "C", Months: []time.Month{time.June}},
	}
	selector := rotation.NewSelector(catalog, 2)

	tracked := selector.TrackedSports(time.June)
	if len(tracked) != 2 {
		t.Fatalf("got %d sports, want 2", len(tracked))
	}
	if tracked[0].Key != "a" || tracked[1].Key != "b" {
		t.Errorf("truncation dropped the wrong entries: %v", tracked)
	}
}

func TestTrackedSportsPadsWithYearRoundAlternates(t *testing.T) {
	allYear := []time.Month{
		time.January, time.February, time.March, time.April,
		time.May, time.June, time.July, time.August,
		time.September, time.October, time.November, time.December,
	}
	catalog := []models.Sport{
		{Key: "seasonal", Name: "Seasonal", Months: []time.Month{time.June}},
		{Key: "winter", Name: "Winter", Months: []time.Month{time.December}},
		{Key: "evergreen", Name: "Evergreen", Months: allYear},
	}
	selector := rotation.NewSelector(catalog, 2)

	// In December only "winter" and "evergreen" are in season; both selected
	// directly. In June, "seasonal" and "evergreen" are in season.
	tracked := selector.TrackedSports(time.June)
	if len(tracked) != 2 {
		t.Fatalf("got %d sports, want 2", len(tracked))
	}
	if tracked[0].Key != "seasonal" || tracked[1].Key != "evergreen" {
		t.Errorf("June selection = %v", tracked)
	}
}

func TestTrackedSportsShortWhenCatalogExhausted(t *testing.T) {
	catalog := []models.Sport{
		{Key: "summer", Name: "Summer", Months: []time.Month{time.July}},
		{Key: "winter", Name: "Winter", Months: []time.Month{time.December}},
	}
	selector := rotation.NewSelector(catalog, 4)

	// Only one sport is obtainable in July; no hard failure, just a short set
	tracked := selector.TrackedSports(time.July)
	if len(tracked) != 1 {
		t.Fatalf("got %d sports, want 1", len(tracked))
	}
	if tracked[0].Key != "summer" {
		t.Errorf("unexpected selection: %v", tracked)
	}
}

func TestSchedule(t *testing.T) {
	selector := rotation.NewSelector(rotation.Catalog, rotation.DefaultMaxTrackedSports)

	entries := selector.Schedule(time.December)
	if len(entries) != rotation.DefaultMaxTrackedSports {
		t.Fatalf("got %d entries, want %d", len(entries), rotation.DefaultMaxTrackedSports)
	}

	for _, entry := range entries {
		if entry.MonthRange == "" {
			t.Errorf("sport %s: empty month range", entry.Key)
		}
	}

	// Year-round sports render a label, not a month list
	for _, entry := range entries {
		if entry.Key == "tennis_atp" && entry.MonthRange != "Year-round" {
			t.Errorf("tennis_atp month range = %q, want Year-round", entry.MonthRange)
		}
	}
}

func TestSportNames(t *testing.T) {
	sports := []models.Sport{
		{Key: "basketball_nba", Name: "NBA"},
		{Key: "icehockey_nhl", Name: "NHL"},
	}

	got := rotation.SportNames(sports)
	want := []string{"NBA", "NHL"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SportNames = %v, want %v", got, want)
	}
}
