package config

import (
	"os"
	"strconv"
	"time"

	"stocktrace/internal/locate"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr  string
	CORSOrigins string // Comma-separated allowed origins

	// Database
	DatabaseURL string

	// Redis cache for lookup responses. Empty disables caching.
	RedisURL string
	CacheTTL time.Duration

	// API auth. Empty leaves the API open (dev only).
	APIToken string

	// Site branding for the dashboard page
	SiteTitle string // env: SITE_TITLE, default: "StockTrace"

	// WeightsFile points at the optional YAML weight-override file.
	WeightsFile string

	// StalenessInterval drives the background staleness monitor.
	StalenessInterval time.Duration

	// Engine holds every ranking-engine threshold. Defaults come from
	// locate.DefaultParams; each knob has an env override.
	Engine locate.Params
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:               getEnv("ENV", "development"),
		ServerAddr:        getEnv("SERVER_ADDR", ":3000"),
		CORSOrigins:       getEnv("CORS_ORIGINS", ""),
		DatabaseURL:       getEnv("DATABASE_URL", "postgres://localhost:5432/stocktrace?sslmode=disable"),
		RedisURL:          getEnv("REDIS_URL", ""),
		CacheTTL:          getEnvDuration("CACHE_TTL", 30*time.Second),
		APIToken:          getEnv("API_TOKEN", ""),
		SiteTitle:         getEnv("SITE_TITLE", "StockTrace"),
		WeightsFile:       getEnv("WEIGHTS_FILE", "weights.yaml"),
		StalenessInterval: getEnvDuration("STALENESS_INTERVAL", 15*time.Minute),
		Engine:            loadEngineParams(),
	}
}

// loadEngineParams applies env overrides on top of the engine defaults.
func loadEngineParams() locate.Params {
	p := locate.DefaultParams()
	p.MaxEvidenceDelta = getEnvFloat("LOCATE_MAX_DELTA", p.MaxEvidenceDelta)
	p.MaxCandidateTotal = getEnvFloat("LOCATE_MAX_TOTAL", p.MaxCandidateTotal)
	p.DecayWindowHours = getEnvFloat("LOCATE_DECAY_WINDOW_HOURS", p.DecayWindowHours)
	p.RecencyWindowHours = getEnvFloat("LOCATE_RECENCY_WINDOW_HOURS", p.RecencyWindowHours)
	p.RecencyBoostMax = getEnvFloat("LOCATE_RECENCY_BOOST_MAX", p.RecencyBoostMax)
	p.TieBreakWindowHours = getEnvFloat("LOCATE_TIEBREAK_WINDOW_HOURS", p.TieBreakWindowHours)
	p.TieBreakPenalty = getEnvFloat("LOCATE_TIEBREAK_PENALTY", p.TieBreakPenalty)
	p.DisplayEvidenceCap = getEnvInt("LOCATE_DISPLAY_EVIDENCE_CAP", p.DisplayEvidenceCap)
	p.NeighborSampleLimit = getEnvInt("LOCATE_NEIGHBOR_SAMPLE_LIMIT", p.NeighborSampleLimit)
	p.ScanClusterLimit = getEnvInt("LOCATE_SCAN_CLUSTER_LIMIT", p.ScanClusterLimit)
	p.AdapterTimeout = getEnvDuration("LOCATE_ADAPTER_TIMEOUT", p.AdapterTimeout)
	return p
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
