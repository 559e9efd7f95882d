package provider

import (
	"context"

	"OddsScout/internal/model"
)

// MockOdds returns controllable fixed data for development and testing.
type MockOdds struct {
	Fixtures map[string][]model.Fixture // keyed by league code
	Err      error
	Calls    int
}

func (m *MockOdds) Name() string { return "mock-odds" }

func (m *MockOdds) FetchLeagueOdds(_ context.Context, leagueCode string) ([]model.Fixture, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Fixtures[leagueCode], nil
}

// MockStats returns controllable team search results and rosters.
type MockStats struct {
	Teams     map[string][]model.TeamRef    // keyed by search query
	Rosters   map[int][]model.PlayerStats   // keyed by team id
	SearchErr error
	RosterErr error
	Calls     int
}

func (m *MockStats) Name() string { return "mock-stats" }

func (m *MockStats) SearchTeams(_ context.Context, name string) ([]model.TeamRef, error) {
	m.Calls++
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	return m.Teams[name], nil
}

func (m *MockStats) FetchRoster(_ context.Context, teamID, _ int) ([]model.PlayerStats, error) {
	m.Calls++
	if m.RosterErr != nil {
		return nil, m.RosterErr
	}
	return m.Rosters[teamID], nil
}
