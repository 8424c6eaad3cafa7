package models

import "time"

// Sport describes one entry in the static sport catalog. Sports are immutable
// configuration: they are never created or mutated at runtime.
type Sport struct {
	// Key is the odds provider's sport identifier, e.g. "basketball_nba"
	Key string `json:"key"`

	// Name is the display name, e.g. "NBA"
	Name string `json:"name"`

	// Months lists the calendar months the sport is considered in-season.
	// A sport listing all twelve months is active year-round.
	Months []time.Month `json:"-"`
}

// InSeason reports whether the sport is active in the given month
func (s Sport) InSeason(month time.Month) bool {
	for _, m := range s.Months {
		if m == month {
			return true
		}
	}
	return false
}

// AllYear reports whether the sport is active in every month
func (s Sport) AllYear() bool {
	return len(s.Months) == 12
}
