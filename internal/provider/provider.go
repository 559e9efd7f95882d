package provider

import (
	"context"

	"OddsScout/internal/model"
)

// OddsFetcher fetches a league's current fixtures with bookmaker quotes.
type OddsFetcher interface {
	FetchLeagueOdds(ctx context.Context, leagueCode string) ([]model.Fixture, error)
	Name() string
}

// StatsFetcher exposes the statistics provider: team search by name and
// roster statistics by team and season.
type StatsFetcher interface {
	SearchTeams(ctx context.Context, name string) ([]model.TeamRef, error)
	FetchRoster(ctx context.Context, teamID, season int) ([]model.PlayerStats, error)
	Name() string
}
