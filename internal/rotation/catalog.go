package rotation

import (
	"time"

	"github.com/roci-emry/sports-betting/pkg/models"
)

// The catalog is priority-ordered: when more sports are in season than the
// tracked-sport quota allows, entries earlier in the list win. It is static
// configuration and is never mutated at runtime.
//
// Tier 1: primary sports (long seasons or year-round)
// Tier 2: seasonal sports (fill slots when active)
// Tier 3: alternates (fill gaps when tiers 1-2 aren't enough)
var Catalog = []models.Sport{
	// Tier 1
	{Key: "basketball_nba", Name: "NBA", Months: months(time.January, time.February, time.March, time.April, time.May, time.June, time.October, time.November, time.December)},
	{Key: "icehockey_nhl", Name: "NHL", Months: months(time.January, time.February, time.March, time.April, time.May, time.October, time.November, time.December)},
	{Key: "basketball_ncaab", Name: "NCAAB", Months: months(time.January, time.February, time.March, time.April, time.November, time.December)},
	{Key: "soccer_epl", Name: "EPL", Months: months(time.January, time.February, time.March, time.April, time.May, time.August, time.September, time.October, time.November, time.December)},
	{Key: "tennis_atp", Name: "Tennis ATP", Months: allYear()},
	{Key: "baseball_mlb", Name: "MLB", Months: months(time.April, time.May, time.June, time.July, time.August, time.September, time.October, time.November)},

	// Tier 2
	{Key: "americanfootball_nfl", Name: "NFL", Months: months(time.September, time.October, time.November, time.December, time.January, time.February)},
	{Key: "americanfootball_ncaaf", Name: "NCAAF", Months: months(time.September, time.October, time.November, time.December, time.January)},

	// Tier 3
	{Key: "basketball_wnba", Name: "WNBA", Months: months(time.May, time.June, time.July, time.August, time.September, time.October)},
	{Key: "soccer_usa_mls", Name: "MLS", Months: months(time.February, time.March, time.April, time.May, time.June, time.July, time.August, time.September, time.October, time.November)},
	{Key: "golf_masters_tournament_winner", Name: "Golf", Months: allYear()},
	{Key: "mma_mixed_martial_arts", Name: "UFC/MMA", Months: allYear()},
	{Key: "basketball_euroleague", Name: "EuroLeague", Months: months(time.January, time.February, time.March, time.April, time.May, time.October, time.November, time.December)},
	{Key: "soccer_uefa_champs_league", Name: "Champions League", Months: months(time.January, time.February, time.March, time.April, time.May, time.September, time.October, time.November, time.December)},
}

func months(m ...time.Month) []time.Month {
	return m
}

func allYear() []time.Month {
	return months(
		time.January, time.February, time.March, time.April,
		time.May, time.June, time.July, time.August,
		time.September, time.October, time.November, time.December,
	)
}
