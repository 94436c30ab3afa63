package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/hcstudio/cashtrack/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.ReconcileToleranceUSD != "0" || cfg.ReconcileToleranceARS != "0" {
		t.Fatalf("expected zero default tolerances, got usd=%s ars=%s",
			cfg.ReconcileToleranceUSD, cfg.ReconcileToleranceARS)
	}

	if cfg.MigrationsPath != "migrations" {
		t.Fatalf("expected default migrations path, got %s", cfg.MigrationsPath)
	}

	if cfg.ReconcileSeverityUSD != "100" || cfg.ReconcileSeverityARS != "10000" {
		t.Fatalf("expected stock severity cutoffs, got usd=%s ars=%s",
			cfg.ReconcileSeverityUSD, cfg.ReconcileSeverityARS)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("RECONCILE_TOLERANCE_USD", "0.01")
	t.Setenv("RECONCILE_TOLERANCE_ARS", "100")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.ReconcileToleranceUSD != "0.01" || cfg.ReconcileToleranceARS != "100" {
		t.Fatalf("expected tolerance overrides, got usd=%s ars=%s",
			cfg.ReconcileToleranceUSD, cfg.ReconcileToleranceARS)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	original := os.Getenv("HTTP_READ_TIMEOUT")
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")
	t.Cleanup(func() {
		t.Setenv("HTTP_READ_TIMEOUT", original)
	})

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
