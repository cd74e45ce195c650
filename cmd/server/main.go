package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sitebid/sitebid/internal/cache"
	"github.com/sitebid/sitebid/internal/calc"
	"github.com/sitebid/sitebid/internal/config"
	"github.com/sitebid/sitebid/internal/db"
	"github.com/sitebid/sitebid/internal/logger"
	"github.com/sitebid/sitebid/internal/migrations"
	"github.com/sitebid/sitebid/internal/seed"
	"github.com/sitebid/sitebid/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.IsDev())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer lg.Sync()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		lg.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close()

	if err := migrations.Up(database, cfg.MigrationsDir); err != nil {
		lg.Fatal("failed to run database migrations", zap.Error(err))
	}

	// Built-in table unless a YAML override is configured; either way the
	// seeded rows in sqlite are what the server actually calculates with,
	// so admin edits survive restarts.
	defaults := calc.DefaultTable()
	if cfg.BenchmarksFile != "" {
		defaults, err = calc.LoadTableFile(cfg.BenchmarksFile)
		if err != nil {
			lg.Fatal("failed to load benchmarks file", zap.Error(err))
		}
	}

	st := store.New(database)
	stats, err := seed.Run(database, defaults)
	if err != nil {
		lg.Fatal("failed to seed benchmarks", zap.Error(err))
	}
	lg.Info("benchmark seed complete", zap.Int("inserts", stats.Inserts))

	table, err := st.LoadTable()
	if err != nil {
		lg.Fatal("failed to load benchmark table", zap.Error(err))
	}

	ctx := context.Background()
	var resultCache cache.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL, lg)
		if err != nil {
			lg.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisCache.Close()
		resultCache = redisCache
		lg.Info("using redis estimate cache", zap.String("addr", cfg.RedisAddr))
	} else {
		resultCache = cache.NewMemory()
		lg.Info("using in-process estimate cache")
	}

	srv := newServer(st, resultCache, table, lg)

	limiter := newRateLimiter(cfg.RateLimitBurst, cfg.RateLimitInterval)
	defer limiter.Stop()

	r := chi.NewRouter()
	r.Use(rateLimitMiddleware(limiter))
	r.Get("/healthz", srv.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/validate", srv.handleValidate)
		r.Post("/estimates", srv.handleCreateEstimate)
		r.Post("/estimates/whatif", srv.handleWhatIf)
		r.Get("/estimates", srv.handleListEstimates)
		r.Get("/estimates/{id}", srv.handleGetEstimate)
		r.Get("/estimates/{id}/export", srv.handleExportEstimate)
		r.Get("/benchmarks", srv.handleListBenchmarks)
		r.Put("/benchmarks", srv.handleUpsertBenchmark)
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		lg.Info("listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-serverErr:
		lg.Fatal("server stopped", zap.Error(err))
	case <-stop.Done():
		lg.Info("shutting down")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown failed", zap.Error(err))
	}
}
