package oddsapi

import "time"

// Game is one event from the odds feed with per-book market data
type Game struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker holds one book's markets for a game
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Market is one market (e.g. h2h) with its priced outcomes
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is one side of a market, priced in American odds
type Outcome struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Bookmaker returns the named book's data, or nil if the feed has no entry
// for it on this game
func (g *Game) Bookmaker(key string) *Bookmaker {
	for i := range g.Bookmakers {
		if g.Bookmakers[i].Key == key {
			return &g.Bookmakers[i]
		}
	}
	return nil
}

// Market returns the named market, or nil if the book does not offer it
func (b *Bookmaker) Market(key string) *Market {
	for i := range b.Markets {
		if b.Markets[i].Key == key {
			return &b.Markets[i]
		}
	}
	return nil
}
