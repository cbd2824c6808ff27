package repositories

import (
	"context"
	"os"
	"testing"
	"tour-itinerary-service/internal/platform/db"

	"github.com/stretchr/testify/require"
)

// Runs against a disposable Postgres database named by TEST_DATABASE_URL.
func TestSQLCatalogRepositoryRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	conn, err := db.Open(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, InitSchema(ctx, conn))
	require.NoError(t, SeedFromJSON(ctx, conn, writeSeed(t, referenceSeeds())))
	// Seeding twice is an upsert.
	require.NoError(t, SeedFromJSON(ctx, conn, writeSeed(t, referenceSeeds())))

	c, err := NewSQLCatalogRepository(conn).LoadCatalog(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, c.Len())
	require.Equal(t, "One Pillar Pagoda", c.At(6).Name)
	require.Equal(t, "18:00", c.At(6).ClosesAt.String())
}

func TestSQLCatalogRepositoryNilDB(t *testing.T) {
	_, err := NewSQLCatalogRepository(nil).LoadCatalog(context.Background())
	require.Error(t, err)
}
