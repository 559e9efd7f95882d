package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"OddsScout/internal/cache"
	"OddsScout/internal/engine"
	"OddsScout/internal/form"
	"OddsScout/internal/metrics"
	"OddsScout/internal/model"
	"OddsScout/internal/provider"
	"OddsScout/internal/resolver"
	"OddsScout/internal/throttle"
)

// League pairs a display name with the odds provider's sport code.
// Pipeline iteration follows the configured league order, which is what makes
// row order deterministic across runs.
type League struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// ThrottledError signals that the minimum-interval guard tripped. It is a
// pause signal for the caller, not a failure of the pipeline.
type ThrottledError struct {
	Wait time.Duration
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("throttled to protect provider usage, retry in %s", e.Wait.Round(time.Millisecond))
}

// Options carries the Pipeline's collaborators and tuning.
type Options struct {
	Odds     provider.OddsFetcher
	Stats    provider.StatsFetcher
	Cache    cache.Cache
	Limiter  *throttle.Limiter
	Metrics  *metrics.Metrics
	Log      *zap.Logger
	Leagues  []League
	Season   int
	OddsTTL  time.Duration
	StatsTTL time.Duration
}

// Pipeline drives one synchronous valuation pass: per selected league fetch
// odds, per fixture resolve both teams and aggregate both rosters, run the
// valuation engine, and collect rows. Every provider or parse failure is
// localized to its fixture or team; nothing aborts a run.
type Pipeline struct {
	odds     provider.OddsFetcher
	resolver *resolver.Resolver
	stats    provider.StatsFetcher
	cache    cache.Cache
	limiter  *throttle.Limiter
	metrics  *metrics.Metrics
	log      *zap.Logger
	leagues  []League
	season   int
	oddsTTL  time.Duration
	statsTTL time.Duration
}

// New wires a Pipeline from its options. Log and Metrics may be nil.
func New(opts Options) *Pipeline {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewUnregistered()
	}
	return &Pipeline{
		odds:     opts.Odds,
		stats:    opts.Stats,
		resolver: resolver.New(opts.Stats, opts.Cache, opts.StatsTTL, opts.Log),
		cache:    opts.Cache,
		limiter:  opts.Limiter,
		metrics:  opts.Metrics,
		log:      opts.Log,
		leagues:  opts.Leagues,
		season:   opts.Season,
		oddsTTL:  opts.OddsTTL,
		statsTTL: opts.StatsTTL,
	}
}

// LeagueNames returns the configured league names in iteration order.
func (p *Pipeline) LeagueNames() []string {
	names := make([]string, len(p.leagues))
	for i, lg := range p.leagues {
		names[i] = lg.Name
	}
	return names
}

// Sources names the two upstream providers.
func (p *Pipeline) Sources() (oddsSource, statsSource string) {
	return p.odds.Name(), p.stats.Name()
}

// Run executes one full pass over the selected leagues (nil or empty means
// all configured leagues). A row is emitted only when both team names and
// both head-to-head prices are present; everything else degrades per side.
func (p *Pipeline) Run(ctx context.Context, selected []string) ([]model.ValuationRow, error) {
	if ok, wait := p.limiter.Allow(); !ok {
		p.metrics.ThrottleTrips.Inc()
		return nil, &ThrottledError{Wait: wait}
	}

	start := time.Now()
	want := make(map[string]bool, len(selected))
	for _, name := range selected {
		want[name] = true
	}

	rows := make([]model.ValuationRow, 0)
	for _, lg := range p.leagues {
		if len(want) > 0 && !want[lg.Name] {
			continue
		}
		for _, fx := range p.leagueOdds(ctx, lg) {
			if fx.HomeTeam == "" || fx.AwayTeam == "" || fx.Quote.HomePrice == 0 || fx.Quote.AwayPrice == 0 {
				continue
			}
			homeForm := p.teamForm(ctx, fx.HomeTeam)
			awayForm := p.teamForm(ctx, fx.AwayTeam)
			v := engine.Value(fx.Quote.HomePrice, fx.Quote.AwayPrice, homeForm, awayForm)
			rows = append(rows, assembleRow(lg.Name, fx, v))
		}
	}

	p.metrics.PipelineRuns.Inc()
	p.metrics.RowsEmitted.Add(float64(len(rows)))
	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.log.Info("pipeline run complete",
		zap.Int("rows", len(rows)),
		zap.Duration("took", time.Since(start)))
	return rows, nil
}

// Refresh invalidates the cache wholesale so the next run refetches.
func (p *Pipeline) Refresh(ctx context.Context) error {
	if err := p.cache.Flush(ctx); err != nil {
		return fmt.Errorf("flush cache: %w", err)
	}
	p.log.Info("cache flushed")
	return nil
}

// leagueOdds returns a league's fixtures, from cache when fresh. A provider
// failure is logged and cached as an empty league for the odds TTL, exactly
// like a league with no upcoming fixtures.
func (p *Pipeline) leagueOdds(ctx context.Context, lg League) []model.Fixture {
	key := "odds:" + lg.Code
	if b, ok := p.cache.Get(ctx, key); ok {
		p.metrics.CacheHits.Inc()
		var fixtures []model.Fixture
		if err := json.Unmarshal(b, &fixtures); err == nil {
			return fixtures
		}
	}
	p.metrics.CacheMisses.Inc()

	p.metrics.ProviderRequests.WithLabelValues(p.odds.Name()).Inc()
	fixtures, err := p.odds.FetchLeagueOdds(ctx, lg.Code)
	if err != nil {
		p.metrics.ProviderErrors.WithLabelValues(p.odds.Name()).Inc()
		p.log.Warn("league odds fetch failed",
			zap.String("league", lg.Name), zap.Error(err))
		fixtures = nil
	}
	if fixtures == nil {
		fixtures = []model.Fixture{}
	}
	if b, err := json.Marshal(fixtures); err == nil {
		if err := p.cache.Set(ctx, key, b, p.oddsTTL); err != nil {
			p.log.Warn("cache league odds", zap.String("league", lg.Name), zap.Error(err))
		}
	}
	return fixtures
}

// teamForm resolves a team and aggregates its roster, from cache when fresh.
// An unresolvable team or roster failure yields the zero-valued summary,
// which contributes no boosts and no defensive counts.
func (p *Pipeline) teamForm(ctx context.Context, teamName string) model.PlayerFormSummary {
	id, ok := p.resolver.Resolve(ctx, teamName)
	if !ok {
		return model.PlayerFormSummary{}
	}

	key := "form:" + strconv.Itoa(id)
	if b, ok := p.cache.Get(ctx, key); ok {
		p.metrics.CacheHits.Inc()
		var sum model.PlayerFormSummary
		if err := json.Unmarshal(b, &sum); err == nil {
			return sum
		}
	}
	p.metrics.CacheMisses.Inc()

	var sum model.PlayerFormSummary
	p.metrics.ProviderRequests.WithLabelValues(p.stats.Name()).Inc()
	players, err := p.stats.FetchRoster(ctx, id, p.season)
	if err != nil {
		p.metrics.ProviderErrors.WithLabelValues(p.stats.Name()).Inc()
		p.log.Warn("roster fetch failed",
			zap.String("team", teamName), zap.Int("team_id", id), zap.Error(err))
	} else {
		sum = form.Aggregate(players)
	}
	if b, err := json.Marshal(sum); err == nil {
		if err := p.cache.Set(ctx, key, b, p.statsTTL); err != nil {
			p.log.Warn("cache team form", zap.String("team", teamName), zap.Error(err))
		}
	}
	return sum
}

func assembleRow(league string, fx model.Fixture, v engine.Valuation) model.ValuationRow {
	startTime := ""
	if !fx.Kickoff.IsZero() {
		startTime = fx.Kickoff.Format("2006-01-02 15:04")
	}
	return model.ValuationRow{
		League:        league,
		Match:         fx.HomeTeam + " vs " + fx.AwayTeam,
		StartTime:     startTime,
		HomeOdds:      fx.Quote.HomePrice,
		AwayOdds:      fx.Quote.AwayPrice,
		HomeProb:      v.HomeProb,
		AwayProb:      v.AwayProb,
		Over25:        fx.Quote.Over25,
		BTTS:          fx.Quote.BTTS,
		ModelHome:     v.ModelHome,
		ModelAway:     v.ModelAway,
		HomeValue:     v.HomeValue,
		AwayValue:     v.AwayValue,
		Edge:          v.Edge,
		Confidence:    v.Confidence,
		Saves:         v.Saves,
		CleanSheets:   v.CleanSheets,
		EliteAttacker: v.Elite,
	}
}
