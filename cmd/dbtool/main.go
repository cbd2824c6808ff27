package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"tour-itinerary-service/internal/adapters/repositories"
	"tour-itinerary-service/internal/config"
	"tour-itinerary-service/internal/platform/db"
	"tour-itinerary-service/internal/platform/obs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err == nil {
		err = run(context.Background(), cfg, envErr != nil)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "dbtool:", err)
		os.Exit(1)
	}
}

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

	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	return initAndSeed(ctx, logger, conn, cfg.SeedPath)
}

func initAndSeed(ctx context.Context, logger *zap.Logger, conn *sql.DB, seedPath string) error {
	logger.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	logger.Info("seeding locations", zap.String("path", seedPath))
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	catalog, err := repositories.NewSQLCatalogRepository(conn).LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("verify catalog: %w", err)
	}
	logger.Info("seeding complete", zap.Int("locations", catalog.Len()))

	return nil
}
