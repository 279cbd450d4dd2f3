package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want :3000", cfg.ServerAddr)
	}
	if cfg.SiteTitle != "StockTrace" {
		t.Errorf("SiteTitle = %q, want StockTrace", cfg.SiteTitle)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want 30s", cfg.CacheTTL)
	}
	if cfg.Engine.MaxEvidenceDelta != 100 {
		t.Errorf("MaxEvidenceDelta = %v, want 100", cfg.Engine.MaxEvidenceDelta)
	}
	if cfg.Engine.MaxCandidateTotal != 1000 {
		t.Errorf("MaxCandidateTotal = %v, want 1000", cfg.Engine.MaxCandidateTotal)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("SITE_TITLE", "Warehouse Trace")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("LOCATE_RECENCY_BOOST_MAX", "40")
	t.Setenv("LOCATE_DISPLAY_EVIDENCE_CAP", "12")
	t.Setenv("LOCATE_ADAPTER_TIMEOUT", "10s")

	cfg := Load()

	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want :8080", cfg.ServerAddr)
	}
	if cfg.SiteTitle != "Warehouse Trace" {
		t.Errorf("SiteTitle = %q, want Warehouse Trace", cfg.SiteTitle)
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Errorf("CacheTTL = %v, want 2m", cfg.CacheTTL)
	}
	if cfg.Engine.RecencyBoostMax != 40 {
		t.Errorf("RecencyBoostMax = %v, want 40", cfg.Engine.RecencyBoostMax)
	}
	if cfg.Engine.DisplayEvidenceCap != 12 {
		t.Errorf("DisplayEvidenceCap = %d, want 12", cfg.Engine.DisplayEvidenceCap)
	}
	if cfg.Engine.AdapterTimeout != 10*time.Second {
		t.Errorf("AdapterTimeout = %v, want 10s", cfg.Engine.AdapterTimeout)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("LOCATE_MAX_DELTA", "not-a-number")
	t.Setenv("CACHE_TTL", "soonish")

	cfg := Load()

	if cfg.Engine.MaxEvidenceDelta != 100 {
		t.Errorf("MaxEvidenceDelta = %v, want default 100", cfg.Engine.MaxEvidenceDelta)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want default 30s", cfg.CacheTTL)
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"dev", true},
		{"production", false},
		{"staging", false},
	}
	for _, tt := range tests {
		c := &Config{Env: tt.env}
		if got := c.IsDev(); got != tt.want {
			t.Errorf("IsDev(%q) = %v, want %v", tt.env, got, tt.want)
		}
	}
}
