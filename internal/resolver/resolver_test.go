package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"OddsScout/internal/cache"
	"OddsScout/internal/model"
	"OddsScout/internal/provider"
)

func newResolver(stats *provider.MockStats) *Resolver {
	return New(stats, cache.NewMemory(), 10*time.Minute, zap.NewNop())
}

func TestResolveSubstringMatch(t *testing.T) {
	stats := &provider.MockStats{Teams: map[string][]model.TeamRef{
		"Man City": {
			{ID: 1006, Name: "Melbourne City"}, // does not contain "man city"
			{ID: 50, Name: "Manchester City"},
		},
	}}
	r := newResolver(stats)

	id, ok := r.Resolve(context.Background(), "Man City")
	assert.True(t, ok)
	assert.Equal(t, 50, id)
}

func TestResolveFirstMatchWins(t *testing.T) {
	stats := &provider.MockStats{Teams: map[string][]model.TeamRef{
		"United": {
			{ID: 33, Name: "Manchester United"},
			{ID: 34, Name: "Newcastle United"},
		},
	}}
	r := newResolver(stats)

	id, ok := r.Resolve(context.Background(), "United")
	assert.True(t, ok)
	assert.Equal(t, 33, id)
}

func TestResolveNoMatch(t *testing.T) {
	stats := &provider.MockStats{Teams: map[string][]model.TeamRef{
		"Atlantis FC": {{ID: 7, Name: "Athletic Club"}},
	}}
	r := newResolver(stats)

	_, ok := r.Resolve(context.Background(), "Atlantis FC")
	assert.False(t, ok)
}

func TestResolveProviderFailureIsAbsent(t *testing.T) {
	stats := &provider.MockStats{SearchErr: errors.New("boom")}
	r := newResolver(stats)

	_, ok := r.Resolve(context.Background(), "Arsenal")
	assert.False(t, ok)
}

func TestResolveCachesHitsAndMisses(t *testing.T) {
	stats := &provider.MockStats{Teams: map[string][]model.TeamRef{
		"Arsenal": {{ID: 42, Name: "Arsenal"}},
	}}
	r := newResolver(stats)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		id, ok := r.Resolve(ctx, "Arsenal")
		assert.True(t, ok)
		assert.Equal(t, 42, id)
	}
	assert.Equal(t, 1, stats.Calls, "repeat lookups should hit the cache")

	for i := 0; i < 3; i++ {
		_, ok := r.Resolve(ctx, "Nowhere FC")
		assert.False(t, ok)
	}
	assert.Equal(t, 2, stats.Calls, "misses should be cached too")
}
