package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"OddsScout/internal/model"
)

func sampleRows() []model.ValuationRow {
	return []model.ValuationRow{
		{Match: "A vs B", Confidence: 85, Edge: 12, Over25: 1.9},
		{Match: "C vs D", Confidence: 72, Edge: 3, BTTS: "Yes @ 1.8"},
		{Match: "E vs F", Confidence: 85, Edge: 8, Over25: 2.1, BTTS: "No @ 2.0"},
		{Match: "G vs H", Confidence: 91, Edge: 15},
		{Match: "I vs J", Confidence: 40, Edge: 22, Over25: 1.7},
	}
}

func TestFilterByConfidence(t *testing.T) {
	rows := sampleRows()
	got := FilterByConfidence(rows, 80)
	assert.Len(t, got, 3)
	// Original order preserved.
	assert.Equal(t, "A vs B", got[0].Match)
	assert.Equal(t, "E vs F", got[1].Match)
	assert.Equal(t, "G vs H", got[2].Match)

	assert.Empty(t, FilterByConfidence(nil, 0))
}

func TestFilterHighConviction(t *testing.T) {
	got := FilterHighConviction(sampleRows())
	for _, r := range got {
		assert.GreaterOrEqual(t, r.Confidence, 80.0)
		assert.GreaterOrEqual(t, r.Edge, 10.0)
	}
	assert.Len(t, got, 2)
	// Boundary values qualify.
	edge := FilterHighConviction([]model.ValuationRow{{Confidence: 80, Edge: 10}})
	assert.Len(t, edge, 1)
}

func TestTopNByConfidence(t *testing.T) {
	rows := sampleRows()
	got := TopNByConfidence(rows, 3)
	assert.Len(t, got, 3)
	assert.Equal(t, "G vs H", got[0].Match)
	// Stable tie-break: A vs B came before E vs F.
	assert.Equal(t, "A vs B", got[1].Match)
	assert.Equal(t, "E vs F", got[2].Match)

	assert.Len(t, TopNByConfidence(rows, 100), len(rows))
	assert.Empty(t, TopNByConfidence(rows, 0))
}

func TestTopNDoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	before := make([]model.ValuationRow, len(rows))
	copy(before, rows)
	_ = TopNByConfidence(rows, 2)
	assert.Equal(t, before, rows)
}

func TestParlayCandidatesOver25(t *testing.T) {
	got := ParlayCandidates(sampleRows(), MarketOver25, 0)
	assert.Len(t, got, 3)
	assert.Equal(t, "A vs B", got[0].Match) // 85
	assert.Equal(t, "E vs F", got[1].Match) // 85, later in input
	assert.Equal(t, "I vs J", got[2].Match) // 40
	for _, r := range got {
		assert.True(t, r.HasOver25())
	}
}

func TestParlayCandidatesBTTS(t *testing.T) {
	got := ParlayCandidates(sampleRows(), MarketBTTS, 1)
	assert.Len(t, got, 1)
	assert.Equal(t, "E vs F", got[0].Match)
}

func TestParlayCandidatesUnknownMarket(t *testing.T) {
	assert.Empty(t, ParlayCandidates(sampleRows(), "h2h", 3))
}
