package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"OddsScout/internal/model"
)

// DefaultFootballBaseURL is the public API-Football v3 endpoint.
const DefaultFootballBaseURL = "https://v3.football.api-sports.io"

// APIFootball implements StatsFetcher against API-Football v3.
type APIFootball struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAPIFootball creates a fetcher for the given endpoint and key.
func NewAPIFootball(baseURL, apiKey string) *APIFootball {
	if baseURL == "" {
		baseURL = DefaultFootballBaseURL
	}
	return &APIFootball{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (f *APIFootball) Name() string { return "api-football" }

// SearchTeams queries /teams?search= and returns id/name pairs in provider order.
func (f *APIFootball) SearchTeams(ctx context.Context, name string) ([]model.TeamRef, error) {
	var out struct {
		Response []struct {
			Team struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"team"`
		} `json:"response"`
	}
	u := fmt.Sprintf("%s/teams?search=%s", f.BaseURL, url.QueryEscape(name))
	if err := f.get(ctx, u, &out); err != nil {
		return nil, err
	}
	refs := make([]model.TeamRef, 0, len(out.Response))
	for _, item := range out.Response {
		refs = append(refs, model.TeamRef{ID: item.Team.ID, Name: item.Team.Name})
	}
	return refs, nil
}

// apiPlayerEntry is one element of the /players response. Rating arrives as
// a string, several counters as null; everything numeric goes through toFloat
// so one malformed field zeroes that field, not the roster.
type apiPlayerEntry struct {
	Player struct {
		Name     string `json:"name"`
		Position string `json:"position"`
	} `json:"player"`
	Statistics []struct {
		Games struct {
			Position string `json:"position"`
			Rating   any    `json:"rating"`
		} `json:"games"`
		Shots struct {
			Total any `json:"total"`
		} `json:"shots"`
		Goals struct {
			Conceded any `json:"conceded"`
			Saves    any `json:"saves"`
		} `json:"goals"`
	} `json:"statistics"`
}

// FetchRoster queries /players?team=&season= and maps each entry's first
// statistics line to a PlayerStats. The games position wins over the player
// profile position when both are present.
func (f *APIFootball) FetchRoster(ctx context.Context, teamID, season int) ([]model.PlayerStats, error) {
	var out struct {
		Response []apiPlayerEntry `json:"response"`
	}
	u := fmt.Sprintf("%s/players?team=%d&season=%d", f.BaseURL, teamID, season)
	if err := f.get(ctx, u, &out); err != nil {
		return nil, err
	}

	players := make([]model.PlayerStats, 0, len(out.Response))
	for _, entry := range out.Response {
		p := model.PlayerStats{
			Name:     entry.Player.Name,
			Position: entry.Player.Position,
		}
		if len(entry.Statistics) > 0 {
			stats := entry.Statistics[0]
			if stats.Games.Position != "" {
				p.Position = stats.Games.Position
			}
			p.Rating = toFloat(stats.Games.Rating)
			p.Shots = toFloat(stats.Shots.Total)
			p.Saves = int(toFloat(stats.Goals.Saves))
			p.Conceded = int(toFloat(stats.Goals.Conceded))
		}
		players = append(players, p)
	}
	return players, nil
}

func (f *APIFootball) get(ctx context.Context, u string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-apisports-key", f.APIKey)

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("football fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("football read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("football api: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("football decode: %w", err)
	}
	return nil
}

// toFloat coerces the loosely typed numbers API-Football returns: ratings as
// strings, counters as null or numbers. Anything unparseable becomes 0.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
