package analyzer

import "fmt"

// Narrative generates the pick's explanation text, keyed on the same EV bands
// that drive confidence tiers. It is presentation logic kept separate from
// the EV math so it can be tested and swapped independently.
func Narrative(team string, isHome bool, implied, estimated, ev float64, config *Config) string {
	location := "on the road"
	if isHome {
		location = "at home"
	}

	evPct := ev * 100
	impliedPct := implied * 100
	estimatedPct := estimated * 100

	switch {
	case ev > config.HighEVThreshold:
		return fmt.Sprintf("%s %s. Market implies %.1f%% win probability, but situational analysis suggests %.1f%%. Strong +%.1f%% expected value.",
			team, location, impliedPct, estimatedPct, evPct)
	case ev > config.MediumEVThreshold:
		return fmt.Sprintf("%s %s with modest edge. Market pricing at %.1f%% vs. estimated %.1f%% gives +%.1f%% EV.",
			team, location, impliedPct, estimatedPct, evPct)
	default:
		return fmt.Sprintf("%s %s. Near fair value with slight situational edge.", team, location)
	}
}
