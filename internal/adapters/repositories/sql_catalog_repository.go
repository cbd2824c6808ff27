package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/platform/obs"
)

// SQL-backed implementation of the CatalogRepository port.
type SQLCatalogRepository struct{ DB *sql.DB }

func NewSQLCatalogRepository(db *sql.DB) *SQLCatalogRepository {
	return &SQLCatalogRepository{DB: db}
}

// Load every stored location and validate them as a catalog.
func (s *SQLCatalogRepository) LoadCatalog(ctx context.Context) (_ *domain.Catalog, err error) {
	defer obs.Time(ctx, "catalog.sql.LoadCatalog")(&err)

	if s.DB == nil {
		return nil, errors.New("sql catalog repository: DB is nil")
	}

	query := `
	SELECT
		location_id,
		name,
		baseline_travel_minutes,
		dwell_minutes,
		opens_at,
		closes_at
	FROM locations
	ORDER BY location_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load catalog: query locations table: %w", err)
	}
	defer rows.Close()

	seeds := make([]LocationSeed, 0, 16)
	for rows.Next() {
		var l LocationSeed
		err := rows.Scan(&l.LocationID, &l.Name, &l.BaselineTravelMinutes, &l.DwellMinutes, &l.OpensAt, &l.ClosesAt)
		if err != nil {
			return nil, fmt.Errorf("load catalog: scan row: %w", err)
		}
		seeds = append(seeds, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: row iteration: %w", err)
	}

	catalog, err := CatalogFromSeeds(seeds)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return catalog, nil
}
