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
	"tour-itinerary-service/internal/adapters/repositories"
	"tour-itinerary-service/internal/api"
	"tour-itinerary-service/internal/api/handlers"
	"tour-itinerary-service/internal/config"
	"tour-itinerary-service/internal/platform/db"
	"tour-itinerary-service/internal/platform/obs"
	"tour-itinerary-service/internal/ports"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires the catalog repository, observers and HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, envErr != nil)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

// run serves until ctx is canceled. Deferred cleanup always runs before it returns.
func run(ctx context.Context, cfg config.Config, noEnvFile bool) error {
	logger, err := obs.NewLogger(cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if noEnvFile {
		logger.Info("no .env file found (using environment variables)")
	}

	repo, closeRepo, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Error("open catalog", zap.Error(err))
		return fmt.Errorf("open catalog: %w", err)
	}
	defer closeRepo()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := api.NewRouter(api.RouterConfig{
		Repo:     repo,
		Observer: ports.Observers{obs.NewMetrics(reg), obs.NewLogObserver(logger)},
		Defaults: handlers.PlanDefaults{
			StartTime:       cfg.DefaultStartTime,
			TimeLimitHours:  cfg.DefaultTimeLimit,
			StrictWindows:   cfg.StrictWindows,
			TransferPenalty: cfg.TransferPenalty,
		},
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", zap.Error(err))
		return fmt.Errorf("listen: %w", err)
	}
	<-shutdownDone

	logger.Info("server stopped")
	return nil
}

// openCatalog uses Postgres when DATABASE_URL is set and the built-in
// catalog otherwise.
func openCatalog(ctx context.Context, cfg config.Config, logger *zap.Logger) (ports.CatalogRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, serving the reference catalog")
		return repositories.NewReferenceCatalogRepository(), func() {}, nil
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	repo := repositories.NewSQLCatalogRepository(conn)
	if _, err := repo.LoadCatalog(ctx); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return repo, func() { _ = conn.Close() }, nil
}
