package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is The Odds API v4 root
	DefaultBaseURL = "https://api.the-odds-api.com/v4"

	// MarketMoneyline is the two-way head-to-head market key
	MarketMoneyline = "h2h"
)

// Client fetches odds from The Odds API
type Client struct {
	// BaseURL may be overridden for testing
	BaseURL string

	apiKey     string
	regions    string
	bookmakers string
	httpClient *http.Client
}

// New creates a new Odds API client restricted to one bookmaker's US lines
func New(apiKey, bookKey string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		regions:    "us",
		bookmakers: bookKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchOdds fetches upcoming games with American moneyline odds for a sport.
// Any non-200 response or transport failure is returned as an error; the
// caller decides how to record it.
func (c *Client) FetchOdds(ctx context.Context, sportKey string) ([]Game, error) {
	endpoint := fmt.Sprintf("%s/sports/%s/odds?apiKey=%s&regions=%s&oddsFormat=american&bookmakers=%s",
		c.BaseURL, sportKey, url.QueryEscape(c.apiKey), c.regions, c.bookmakers)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("API error %d", resp.StatusCode)
	}

	var games []Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return games, nil
}
