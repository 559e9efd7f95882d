package model

import "time"

// MarketQuote holds the first bookmaker's prices for one fixture.
// A zero price means the market was not offered.
type MarketQuote struct {
	HomePrice float64
	AwayPrice float64
	DrawPrice float64
	Over25    float64
	BTTS      string // e.g. "Yes @ 1.8", empty when absent
}

// Fixture is one scheduled match as returned by the odds provider.
// Immutable once fetched; identity is (league, home, away, kickoff).
type Fixture struct {
	League   string
	HomeTeam string
	AwayTeam string
	Kickoff  time.Time
	Quote    MarketQuote
}
