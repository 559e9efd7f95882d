package engine

import (
	"sort"

	"OddsScout/internal/model"
)

// Secondary market identifiers accepted by ParlayCandidates.
const (
	MarketOver25 = "over25"
	MarketBTTS   = "btts"
)

// High-conviction thresholds.
const (
	highConvictionConfidence = 80.0
	highConvictionEdge       = 10.0
)

// DefaultParlaySize is how many legs a suggested parlay carries.
const DefaultParlaySize = 3

// FilterByConfidence returns rows whose confidence index meets the threshold,
// in original order. The input is never mutated.
func FilterByConfidence(rows []model.ValuationRow, threshold float64) []model.ValuationRow {
	out := make([]model.ValuationRow, 0, len(rows))
	for _, r := range rows {
		if r.Confidence >= threshold {
			out = append(out, r)
		}
	}
	return out
}

// FilterHighConviction returns rows with confidence index >= 80 and edge >= 10.
func FilterHighConviction(rows []model.ValuationRow) []model.ValuationRow {
	out := make([]model.ValuationRow, 0, len(rows))
	for _, r := range rows {
		if r.Confidence >= highConvictionConfidence && r.Edge >= highConvictionEdge {
			out = append(out, r)
		}
	}
	return out
}

// TopNByConfidence returns at most n rows sorted by confidence index
// descending. The sort is stable: ties keep original row order.
func TopNByConfidence(rows []model.ValuationRow, n int) []model.ValuationRow {
	sorted := sortByConfidence(rows)
	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// ParlayCandidates returns up to n rows where the given secondary market is
// quoted, best confidence first. Unknown markets yield no candidates.
func ParlayCandidates(rows []model.ValuationRow, market string, n int) []model.ValuationRow {
	if n <= 0 {
		n = DefaultParlaySize
	}
	present := make([]model.ValuationRow, 0, len(rows))
	for _, r := range rows {
		switch market {
		case MarketOver25:
			if r.HasOver25() {
				present = append(present, r)
			}
		case MarketBTTS:
			if r.HasBTTS() {
				present = append(present, r)
			}
		}
	}
	sorted := sortByConfidence(present)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func sortByConfidence(rows []model.ValuationRow) []model.ValuationRow {
	out := make([]model.ValuationRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out
}
