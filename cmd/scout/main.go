package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"OddsScout/internal/api"
	"OddsScout/internal/cache"
	"OddsScout/internal/config"
	"OddsScout/internal/ledger"
	"OddsScout/internal/logger"
	"OddsScout/internal/metrics"
	"OddsScout/internal/pipeline"
	"OddsScout/internal/provider"
	"OddsScout/internal/throttle"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("oddsscout", cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("OddsScout starting", zap.String("env", cfg.Env))

	// Init cache backend
	var store cache.Cache
	if cfg.Cache.Backend == config.BackendRedis {
		rc, err := cache.ConnectRedis(cfg.Cache.RedisAddr)
		if err != nil {
			log.Warn("redis unavailable, falling back to in-memory cache", zap.Error(err))
			store = cache.NewMemory()
		} else {
			store = rc
			defer rc.Close()
			log.Info("cache backend: redis", zap.String("addr", cfg.Cache.RedisAddr))
		}
	} else {
		store = cache.NewMemory()
		log.Info("cache backend: memory")
	}

	// Init providers
	odds := provider.NewTheOddsAPI(cfg.OddsAPI.BaseURL, cfg.OddsAPI.APIKey)
	stats := provider.NewAPIFootball(cfg.FootballAPI.BaseURL, cfg.FootballAPI.APIKey)
	log.Info("providers ready",
		zap.String("odds_source", odds.Name()),
		zap.String("stats_source", stats.Name()))

	// Metrics
	met := metrics.New(prometheus.DefaultRegisterer)
	metricsSrv := metrics.StartServer(cfg.Server.MetricsPort)
	log.Info("metrics server listening", zap.String("port", cfg.Server.MetricsPort))

	// Pipeline
	pipe := pipeline.New(pipeline.Options{
		Odds:     odds,
		Stats:    stats,
		Cache:    store,
		Limiter:  throttle.New(cfg.ThrottleInterval()),
		Metrics:  met,
		Log:      log,
		Leagues:  cfg.Leagues,
		Season:   cfg.Season,
		OddsTTL:  cfg.OddsTTL(),
		StatsTTL: cfg.StatsTTL(),
	})

	// HTTP API
	apiSrv := api.NewServer(pipe, ledger.New(), log)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Server.HTTPPort,
		Handler: apiSrv.Router(),
	}
	go func() {
		log.Info("http server listening", zap.String("port", cfg.Server.HTTPPort))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	if err := metricsSrv.Shutdown(ctx); err != nil {
		log.Warn("metrics shutdown", zap.Error(err))
	}
	log.Info("OddsScout stopped")
}
