package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"OddsScout/internal/model"
	"OddsScout/internal/oddsmath"
)

// Bet type labels derived from the match description.
const (
	TypeOver25 = "Over 2.5"
	TypeBTTS   = "BTTS"
	TypeOther  = "Other"
)

// Ledger is the session-scoped ROI tracker: an append-only, in-memory
// sequence of manually entered bet outcomes. Records are never mutated or
// deleted; everything is lost when the process exits, by design of the
// product, not by omission.
type Ledger struct {
	mu      sync.Mutex
	records []model.BetRecord
	now     func() time.Time
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{now: time.Now}
}

// Append stores one settled bet and returns the stamped record.
// Net units follow flat one-unit staking: odds-1 on a win, -1 on a loss.
func (l *Ledger) Append(match string, odds float64, result model.BetResult) model.BetRecord {
	net := -1.0
	if result == model.BetWin {
		net = odds - 1
	}
	rec := model.BetRecord{
		ID:        uuid.NewString(),
		Match:     match,
		Odds:      odds,
		Result:    result,
		Net:       oddsmath.Round2(net),
		Timestamp: l.now(),
	}

	l.mu.Lock()
	l.records = append(l.records, rec)
	l.mu.Unlock()
	return rec
}

// Snapshot returns a copy of all records in insertion order.
func (l *Ledger) Snapshot() []model.BetRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.BetRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Summary derives total net units, win rate, and the per-type breakdown.
func (l *Ledger) Summary() model.LedgerSummary {
	records := l.Snapshot()

	sum := model.LedgerSummary{ByType: make(map[string]model.TypePerformance)}
	wins := 0
	typeWins := make(map[string]int)

	for _, rec := range records {
		sum.Bets++
		sum.Net += rec.Net
		if rec.Result == model.BetWin {
			wins++
		}

		bt := ClassifyBet(rec.Match)
		perf := sum.ByType[bt]
		perf.Bets++
		perf.Net = oddsmath.Round2(perf.Net + rec.Net)
		if rec.Result == model.BetWin {
			typeWins[bt]++
		}
		sum.ByType[bt] = perf
	}

	if sum.Bets > 0 {
		sum.WinRate = oddsmath.Round2(float64(wins) / float64(sum.Bets) * 100)
	}
	sum.Net = oddsmath.Round2(sum.Net)
	for bt, perf := range sum.ByType {
		perf.WinRate = oddsmath.Round2(float64(typeWins[bt]) / float64(perf.Bets) * 100)
		sum.ByType[bt] = perf
	}
	return sum
}

// ClassifyBet buckets a bet by its match label: "Over" anywhere marks an
// over-2.5 bet, otherwise "BTTS" marks a both-teams-to-score bet.
func ClassifyBet(match string) string {
	switch {
	case strings.Contains(match, "Over"):
		return TypeOver25
	case strings.Contains(match, "BTTS"):
		return TypeBTTS
	default:
		return TypeOther
	}
}
