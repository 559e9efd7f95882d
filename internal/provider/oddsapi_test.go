package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oddsPayload = `[
  {
    "home_team": "Arsenal",
    "away_team": "Chelsea",
    "commence_time": "2026-09-05T16:30:00Z",
    "bookmakers": [
      {
        "key": "first_book",
        "markets": [
          {"key": "h2h", "outcomes": [
            {"name": "Arsenal", "price": 1.8},
            {"name": "Chelsea", "price": 4.2},
            {"name": "Draw", "price": 3.6}
          ]},
          {"key": "totals", "outcomes": [
            {"name": "Over 2.5", "price": 1.95},
            {"name": "Under 2.5", "price": 1.85}
          ]},
          {"key": "btts", "outcomes": [
            {"name": "Yes", "price": 1.7},
            {"name": "No", "price": 2.1}
          ]}
        ]
      },
      {
        "key": "second_book",
        "markets": [
          {"key": "h2h", "outcomes": [
            {"name": "Arsenal", "price": 9.9},
            {"name": "Chelsea", "price": 9.9}
          ]}
        ]
      }
    ]
  },
  {
    "home_team": "Everton",
    "away_team": "Fulham",
    "commence_time": "not-a-time",
    "bookmakers": []
  }
]`

func TestFetchLeagueOdds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/sports/soccer_epl/odds/", r.URL.Path)
		assert.Equal(t, "eu", r.URL.Query().Get("regions"))
		assert.Equal(t, "h2h,totals,btts", r.URL.Query().Get("markets"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		_, _ = w.Write([]byte(oddsPayload))
	}))
	defer srv.Close()

	f := NewTheOddsAPI(srv.URL, "test-key")
	fixtures, err := f.FetchLeagueOdds(context.Background(), "soccer_epl")
	require.NoError(t, err)
	require.Len(t, fixtures, 2)

	fx := fixtures[0]
	assert.Equal(t, "Arsenal", fx.HomeTeam)
	assert.Equal(t, "Chelsea", fx.AwayTeam)
	assert.Equal(t, time.Date(2026, 9, 5, 16, 30, 0, 0, time.UTC), fx.Kickoff)
	// First bookmaker only: the 9.9 quotes from the second book are ignored.
	assert.Equal(t, 1.8, fx.Quote.HomePrice)
	assert.Equal(t, 4.2, fx.Quote.AwayPrice)
	assert.Equal(t, 3.6, fx.Quote.DrawPrice)
	assert.Equal(t, 1.95, fx.Quote.Over25)
	// Last Yes/No outcome wins.
	assert.Equal(t, "No @ 2.1", fx.Quote.BTTS)

	// No bookmakers → empty quote, unparseable kickoff → zero time.
	assert.Zero(t, fixtures[1].Quote)
	assert.True(t, fixtures[1].Kickoff.IsZero())
}

func TestFetchLeagueOddsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad key"}`))
	}))
	defer srv.Close()

	f := NewTheOddsAPI(srv.URL, "bad")
	_, err := f.FetchLeagueOdds(context.Background(), "soccer_epl")
	assert.Error(t, err)
}

func TestFetchLeagueOddsMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	f := NewTheOddsAPI(srv.URL, "k")
	_, err := f.FetchLeagueOdds(context.Background(), "soccer_epl")
	assert.Error(t, err)
}
