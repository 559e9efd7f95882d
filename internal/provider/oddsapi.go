package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"OddsScout/internal/model"
)

// DefaultOddsBaseURL is the public The Odds API endpoint.
const DefaultOddsBaseURL = "https://api.the-odds-api.com"

// TheOddsAPI implements OddsFetcher against The Odds API v4.
type TheOddsAPI struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewTheOddsAPI creates a fetcher for the given endpoint and key.
func NewTheOddsAPI(baseURL, apiKey string) *TheOddsAPI {
	if baseURL == "" {
		baseURL = DefaultOddsBaseURL
	}
	return &TheOddsAPI{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (f *TheOddsAPI) Name() string { return "the-odds-api" }

// oddsEvent is the per-fixture response shape from the odds endpoint.
type oddsEvent struct {
	HomeTeam     string `json:"home_team"`
	AwayTeam     string `json:"away_team"`
	CommenceTime string `json:"commence_time"`
	Bookmakers   []struct {
		Key     string `json:"key"`
		Markets []struct {
			Key      string `json:"key"`
			Outcomes []struct {
				Name  string  `json:"name"`
				Price float64 `json:"price"`
			} `json:"outcomes"`
		} `json:"markets"`
	} `json:"bookmakers"`
}

// FetchLeagueOdds returns the league's fixtures with the first bookmaker's
// h2h, totals, and BTTS prices. Only the first bookmaker in the response is
// consulted; the provider does not guarantee a stable bookmaker order, so
// repeated fetches may quote different books. This mirrors the documented
// behavior and is deliberately not "fixed" with a sort key.
func (f *TheOddsAPI) FetchLeagueOdds(ctx context.Context, leagueCode string) ([]model.Fixture, error) {
	u := fmt.Sprintf("%s/v4/sports/%s/odds/?regions=eu&markets=h2h,totals,btts&apiKey=%s",
		f.BaseURL, url.PathEscape(leagueCode), url.QueryEscape(f.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("odds fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("odds read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("odds api: status %d, body: %s", resp.StatusCode, string(body))
	}

	var events []oddsEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("odds decode: %w", err)
	}

	fixtures := make([]model.Fixture, 0, len(events))
	for _, ev := range events {
		fixtures = append(fixtures, model.Fixture{
			HomeTeam: ev.HomeTeam,
			AwayTeam: ev.AwayTeam,
			Kickoff:  parseKickoff(ev.CommenceTime),
			Quote:    extractQuote(ev),
		})
	}
	return fixtures, nil
}

// extractQuote reads the first bookmaker's markets into a MarketQuote.
// h2h outcomes are matched by exact team name; the totals outcome is taken
// when its name mentions both "over" and "2.5"; BTTS keeps the last Yes/No
// outcome seen, labelled "Name @ price".
func extractQuote(ev oddsEvent) model.MarketQuote {
	var q model.MarketQuote
	if len(ev.Bookmakers) == 0 {
		return q
	}
	for _, market := range ev.Bookmakers[0].Markets {
		switch market.Key {
		case "h2h":
			for _, o := range market.Outcomes {
				switch o.Name {
				case ev.HomeTeam:
					q.HomePrice = o.Price
				case ev.AwayTeam:
					q.AwayPrice = o.Price
				case "Draw":
					q.DrawPrice = o.Price
				}
			}
		case "totals":
			for _, o := range market.Outcomes {
				name := strings.ToLower(o.Name)
				if strings.Contains(name, "over") && strings.Contains(name, "2.5") {
					q.Over25 = o.Price
				}
			}
		case "btts":
			for _, o := range market.Outcomes {
				if o.Name == "Yes" || o.Name == "No" {
					q.BTTS = fmt.Sprintf("%s @ %g", o.Name, o.Price)
				}
			}
		}
	}
	return q
}

func parseKickoff(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
