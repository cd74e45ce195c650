package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "DB_PATH", "MIGRATIONS_DIR", "REDIS_ADDR", "CACHE_TTL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.DBPath != "./dev.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "./dev.db")
	}
	if cfg.MigrationsDir != "migrations" {
		t.Fatalf("MigrationsDir = %q, want %q", cfg.MigrationsDir, "migrations")
	}
	if !cfg.IsDev() {
		t.Fatalf("expected dev mode by default, got APP_ENV=%q", cfg.AppEnv)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "15m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.IsDev() {
		t.Fatalf("expected production mode")
	}
	if cfg.Port != "9090" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.CacheTTL != 15*time.Minute {
		t.Fatalf("CacheTTL = %v, want 15m", cfg.CacheTTL)
	}
}
