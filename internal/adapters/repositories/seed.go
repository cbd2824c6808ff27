package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"tour-itinerary-service/internal/domain"
)

// LocationSeed is the JSON and row shape of one catalog entry.
type LocationSeed struct {
	LocationID            int    `json:"location_id"`
	Name                  string `json:"name"`
	BaselineTravelMinutes int    `json:"baseline_travel_minutes"`
	DwellMinutes          int    `json:"dwell_minutes"`
	OpensAt               string `json:"opens_at"`
	ClosesAt              string `json:"closes_at"`
}

func (s LocationSeed) toLocation() (domain.Location, error) {
	opens, err := domain.ParseTimeOfDay(s.OpensAt)
	if err != nil {
		return domain.Location{}, fmt.Errorf("location_id=%d opens_at: %w", s.LocationID, err)
	}
	closes, err := domain.ParseTimeOfDay(s.ClosesAt)
	if err != nil {
		return domain.Location{}, fmt.Errorf("location_id=%d closes_at: %w", s.LocationID, err)
	}

	return domain.Location{
		ID:             s.LocationID,
		Name:           strings.TrimSpace(s.Name),
		BaselineTravel: time.Duration(s.BaselineTravelMinutes) * time.Minute,
		Dwell:          time.Duration(s.DwellMinutes) * time.Minute,
		OpensAt:        opens,
		ClosesAt:       closes,
	}, nil
}

// SeedOf converts a location back into its seed row.
func SeedOf(l domain.Location) LocationSeed {
	return LocationSeed{
		LocationID:            l.ID,
		Name:                  l.Name,
		BaselineTravelMinutes: int(l.BaselineTravel / time.Minute),
		DwellMinutes:          int(l.Dwell / time.Minute),
		OpensAt:               l.OpensAt.String(),
		ClosesAt:              l.ClosesAt.String(),
	}
}

// CatalogFromSeeds validates seed rows and builds a Catalog from them.
func CatalogFromSeeds(seeds []LocationSeed) (*domain.Catalog, error) {
	locs := make([]domain.Location, 0, len(seeds))
	for _, s := range seeds {
		loc, err := s.toLocation()
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return domain.NewCatalog(locs)
}

// LoadSeedFile reads and validates a JSON seed file.
func LoadSeedFile(jsonPath string) ([]LocationSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var data []LocationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	if _, err := CatalogFromSeeds(data); err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	return data, nil
}

// Populate the locations table from a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	if db == nil {
		return errors.New("seed locations: DB is nil")
	}

	rows, err := LoadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO locations (
		location_id,
		name,
		baseline_travel_minutes,
		dwell_minutes,
		opens_at,
		closes_at
	)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (location_id) DO UPDATE SET
		name = EXCLUDED.name,
		baseline_travel_minutes = EXCLUDED.baseline_travel_minutes,
		dwell_minutes = EXCLUDED.dwell_minutes,
		opens_at = EXCLUDED.opens_at,
		closes_at = EXCLUDED.closes_at;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range rows {
		if _, err := stmt.ExecContext(ctx,
			l.LocationID, strings.TrimSpace(l.Name), l.BaselineTravelMinutes, l.DwellMinutes, l.OpensAt, l.ClosesAt,
		); err != nil {
			return fmt.Errorf("seed locations: insert location_id=%d: %w", l.LocationID, err)
		}
	}

	// Drop rows beyond the seeded range so ids stay contiguous.
	if _, err := tx.ExecContext(ctx, `DELETE FROM locations WHERE location_id >= $1;`, len(rows)); err != nil {
		return fmt.Errorf("seed locations: trim stale rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}
