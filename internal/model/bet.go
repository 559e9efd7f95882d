package model

import "time"

// BetResult is the manually entered outcome of a settled bet.
type BetResult string

const (
	BetWin  BetResult = "Win"
	BetLoss BetResult = "Loss"
)

// BetRecord is one manually logged bet. Records are appended to the ledger,
// never mutated or deleted, and live for the session only.
type BetRecord struct {
	ID        string    `json:"id"`
	Match     string    `json:"match"`
	Odds      float64   `json:"odds"`
	Result    BetResult `json:"result"`
	Net       float64   `json:"net"` // units: odds-1 on a win, -1 on a loss
	Timestamp time.Time `json:"timestamp"`
}

// TypePerformance aggregates ledger records of one bet type.
type TypePerformance struct {
	Bets    int     `json:"bets"`
	Net     float64 `json:"net"`
	WinRate float64 `json:"win_rate"` // percent
}

// LedgerSummary is the derived performance view over all ledger records.
type LedgerSummary struct {
	Bets    int                        `json:"bets"`
	Net     float64                    `json:"net"`
	WinRate float64                    `json:"win_rate"` // percent
	ByType  map[string]TypePerformance `json:"by_type"`
}
