package resolver

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"OddsScout/internal/cache"
	"OddsScout/internal/provider"
)

// Resolver maps a bookmaker's team name to the statistics provider's team id.
//
// The match rule accepts the first search result whose official name contains
// the query as a case-insensitive substring. That tolerates "Man City" vs
// "Manchester City" but is a known source of false positives and negatives;
// callers handle an absent id by substituting the zero-valued form summary.
type Resolver struct {
	stats provider.StatsFetcher
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

// New creates a Resolver that caches lookups (hits and misses) for ttl.
func New(stats provider.StatsFetcher, c cache.Cache, ttl time.Duration, log *zap.Logger) *Resolver {
	return &Resolver{stats: stats, cache: c, ttl: ttl, log: log}
}

// Resolve returns the provider id for a team name, or false when the name
// cannot be resolved. Provider failures degrade to absent, never an error.
func (r *Resolver) Resolve(ctx context.Context, name string) (int, bool) {
	key := "team:" + name
	if b, ok := r.cache.Get(ctx, key); ok {
		id, err := strconv.Atoi(string(b))
		if err == nil {
			return id, id != 0
		}
	}

	id := r.lookup(ctx, name)
	if err := r.cache.Set(ctx, key, []byte(strconv.Itoa(id)), r.ttl); err != nil {
		r.log.Warn("cache team id", zap.String("team", name), zap.Error(err))
	}
	return id, id != 0
}

func (r *Resolver) lookup(ctx context.Context, name string) int {
	refs, err := r.stats.SearchTeams(ctx, name)
	if err != nil {
		r.log.Warn("team search failed", zap.String("team", name), zap.Error(err))
		return 0
	}
	query := strings.ToLower(name)
	for _, ref := range refs {
		if strings.Contains(strings.ToLower(ref.Name), query) {
			return ref.ID
		}
	}
	return 0
}
