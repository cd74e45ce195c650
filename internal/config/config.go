package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	AppEnv         string `env:"APP_ENV" envDefault:"dev"`
	Port           string `env:"PORT" envDefault:"8080"`
	DBPath         string `env:"DB_PATH" envDefault:"./dev.db"`
	MigrationsDir  string `env:"MIGRATIONS_DIR" envDefault:"migrations"`
	BenchmarksFile string `env:"BENCHMARKS_FILE"` // optional YAML override of the built-in table

	RedisAddr     string        `env:"REDIS_ADDR"` // empty means in-process cache
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"24h"`

	RateLimitBurst    int           `env:"RATE_LIMIT_BURST" envDefault:"30"`
	RateLimitInterval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"1m"`
}

// Load reads the optional .env file and then the process environment.
func Load() (Config, error) {
	// Best-effort: local dev variables. Production uses real env injection.
	_ = loadDotEnv(".env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config from environment: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool {
	return c.AppEnv == "dev"
}
