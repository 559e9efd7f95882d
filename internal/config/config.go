package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"OddsScout/internal/pipeline"
)

// Cache backend selectors.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Env string `yaml:"env"` // "local", "dev", "prod"

	OddsAPI struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"odds_api"`
	FootballAPI struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"football_api"`

	Season  int               `yaml:"season"`
	Leagues []pipeline.League `yaml:"leagues"`

	Throttle struct {
		MinIntervalMS int `yaml:"min_interval_ms"`
	} `yaml:"throttle"`

	Cache struct {
		Backend         string `yaml:"backend"` // "memory" or "redis"
		RedisAddr       string `yaml:"redis_addr"`
		OddsTTLSeconds  int    `yaml:"odds_ttl_seconds"`
		StatsTTLSeconds int    `yaml:"stats_ttl_seconds"`
	} `yaml:"cache"`

	Server struct {
		HTTPPort    string `yaml:"http_port"`
		MetricsPort string `yaml:"metrics_port"`
	} `yaml:"server"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then fills defaults. A missing file is fine: env vars and
// defaults carry a full configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("ODDS_API_KEY"); v != "" {
		cfg.OddsAPI.APIKey = v
	}
	if v := os.Getenv("ODDS_API_BASE_URL"); v != "" {
		cfg.OddsAPI.BaseURL = v
	}
	if v := os.Getenv("FOOTBALL_API_KEY"); v != "" {
		cfg.FootballAPI.APIKey = v
	}
	if v := os.Getenv("FOOTBALL_API_BASE_URL"); v != "" {
		cfg.FootballAPI.BaseURL = v
	}
	if v := os.Getenv("SEASON"); v != "" {
		if season, err := strconv.Atoi(v); err == nil {
			cfg.Season = season
		}
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		cfg.Server.HTTPPort = v
	}
	if v := os.Getenv("METRICS_PORT"); v != "" {
		cfg.Server.MetricsPort = v
	}

	// Defaults
	if cfg.Env == "" {
		cfg.Env = "local"
	}
	if cfg.Season == 0 {
		cfg.Season = 2024
	}
	if len(cfg.Leagues) == 0 {
		cfg.Leagues = DefaultLeagues()
	}
	if cfg.Throttle.MinIntervalMS == 0 {
		cfg.Throttle.MinIntervalMS = 500
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = BackendMemory
	}
	if cfg.Cache.RedisAddr == "" {
		cfg.Cache.RedisAddr = "localhost:6379"
	}
	if cfg.Cache.OddsTTLSeconds == 0 {
		cfg.Cache.OddsTTLSeconds = 120
	}
	if cfg.Cache.StatsTTLSeconds == 0 {
		cfg.Cache.StatsTTLSeconds = 600
	}
	if cfg.Server.HTTPPort == "" {
		cfg.Server.HTTPPort = "8080"
	}
	if cfg.Server.MetricsPort == "" {
		cfg.Server.MetricsPort = "9090"
	}

	return cfg, nil
}

// DefaultLeagues is the supported league catalog with The Odds API codes.
func DefaultLeagues() []pipeline.League {
	return []pipeline.League{
		{Name: "EPL", Code: "soccer_epl"},
		{Name: "La Liga", Code: "soccer_spain_la_liga"},
		{Name: "Bundesliga", Code: "soccer_germany_bundesliga"},
		{Name: "Serie A", Code: "soccer_italy_serie_a"},
		{Name: "Ligue 1", Code: "soccer_france_ligue_one"},
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.OddsAPI.APIKey == "" {
		return fmt.Errorf("odds_api.api_key is required")
	}
	if c.FootballAPI.APIKey == "" {
		return fmt.Errorf("football_api.api_key is required")
	}
	if c.Season <= 0 {
		return fmt.Errorf("season must be positive")
	}
	if len(c.Leagues) == 0 {
		return fmt.Errorf("at least one league is required")
	}
	for _, lg := range c.Leagues {
		if lg.Name == "" || lg.Code == "" {
			return fmt.Errorf("league entries need both name and code")
		}
	}
	if c.Cache.Backend != BackendMemory && c.Cache.Backend != BackendRedis {
		return fmt.Errorf("cache.backend must be %q or %q", BackendMemory, BackendRedis)
	}
	return nil
}

// ThrottleInterval returns the minimum gap between pipeline runs.
func (c *Config) ThrottleInterval() time.Duration {
	return time.Duration(c.Throttle.MinIntervalMS) * time.Millisecond
}

// OddsTTL returns how long fetched odds stay fresh.
func (c *Config) OddsTTL() time.Duration {
	return time.Duration(c.Cache.OddsTTLSeconds) * time.Second
}

// StatsTTL returns how long team ids and form summaries stay fresh.
func (c *Config) StatsTTL() time.Duration {
	return time.Duration(c.Cache.StatsTTLSeconds) * time.Second
}
