package domain

import (
	"fmt"
	"strings"
	"time"
)

// Catalog is a validated, read-only list of locations indexed by id.
// Location 0 is the origin.
type Catalog struct {
	locations []Location
}

// NewCatalog validates locs and returns a Catalog that owns a copy of them.
//
// Ids must be contiguous from 0 in slice order, names non-empty, durations
// non-negative and every window must open no later than it closes.
//
// The origin's window is never consulted: itineraries start there at any
// clock. Its dwell is allowed and is spent before the first leg.
func NewCatalog(locs []Location) (*Catalog, error) {
	if len(locs) == 0 {
		return nil, fmt.Errorf("new catalog: %w: no locations", ErrInvalidCatalog)
	}

	out := make([]Location, len(locs))
	for i, l := range locs {
		if l.ID != i {
			return nil, fmt.Errorf("new catalog: %w: location at index %d has id %d", ErrInvalidCatalog, i, l.ID)
		}
		if strings.TrimSpace(l.Name) == "" {
			return nil, fmt.Errorf("new catalog: %w: location %d has empty name", ErrInvalidCatalog, i)
		}
		if l.BaselineTravel < 0 || l.Dwell < 0 {
			return nil, fmt.Errorf("new catalog: %w: location %d has negative duration", ErrInvalidCatalog, i)
		}
		if l.OpensAt > l.ClosesAt {
			return nil, fmt.Errorf(
				"new catalog: %w: location %d opens at %s after closing at %s",
				ErrInvalidCatalog, i, l.OpensAt, l.ClosesAt,
			)
		}
		out[i] = l
	}

	return &Catalog{locations: out}, nil
}

func (c *Catalog) Len() int { return len(c.locations) }

// Location returns the location with the given id.
func (c *Catalog) Location(id int) (Location, error) {
	if id < 0 || id >= len(c.locations) {
		return Location{}, fmt.Errorf("catalog location %d: %w", id, ErrUnknownLocation)
	}
	return c.locations[id], nil
}

// At returns the location with the given id. Callers must pass a valid id.
func (c *Catalog) At(id int) Location { return c.locations[id] }

func (c *Catalog) Origin() Location { return c.locations[OriginID] }

// Locations returns a copy of all locations in id order.
func (c *Catalog) Locations() []Location {
	out := make([]Location, len(c.locations))
	copy(out, c.locations)
	return out
}

// ReferenceCatalog returns the seven-stop Hanoi sightseeing catalog.
func ReferenceCatalog() *Catalog {
	mins := func(n int) time.Duration { return time.Duration(n) * time.Minute }
	allDay := func(id int, name string, travel, dwell int) Location {
		return Location{ID: id, Name: name, BaselineTravel: mins(travel), Dwell: mins(dwell),
			OpensAt: MustTimeOfDay("00:00"), ClosesAt: MustTimeOfDay("23:59")}
	}
	window := func(id int, name string, travel, dwell int, opens, closes string) Location {
		return Location{ID: id, Name: name, BaselineTravel: mins(travel), Dwell: mins(dwell),
			OpensAt: MustTimeOfDay(opens), ClosesAt: MustTimeOfDay(closes)}
	}

	c, err := NewCatalog([]Location{
		allDay(0, "Hoan Kiem Lake", 0, 0),
		allDay(1, "Old Quarter", 10, 90),
		window(2, "History Museum", 15, 90, "08:00", "17:00"),
		window(3, "Imperial Citadel", 20, 90, "08:00", "17:00"),
		window(4, "Temple of Literature", 15, 90, "08:00", "17:00"),
		window(5, "Ho Chi Minh Mausoleum", 20, 90, "08:00", "11:00"),
		window(6, "One Pillar Pagoda", 5, 30, "08:00", "18:00"),
	})
	if err != nil {
		panic(err)
	}
	return c
}
