package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"tour-itinerary-service/internal/config"

	"github.com/stretchr/testify/require"
)

func TestRunRequiresDatabaseURL(t *testing.T) {
	err := run(context.Background(), config.Config{LogFormat: "console"}, false)
	require.EqualError(t, err, "DATABASE_URL is required")
}

// Seeds from Config.SeedPath into the database named by TEST_DATABASE_URL.
func TestRunSeedsFromConfiguredPath(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL: url,
		SeedPath:    filepath.Join("..", "..", "data", "seeds", "locations.json"),
		LogFormat:   "console",
	}
	require.NoError(t, run(context.Background(), cfg, false))

	cfg.SeedPath = filepath.Join(t.TempDir(), "missing.json")
	require.Error(t, run(context.Background(), cfg, false))
}
