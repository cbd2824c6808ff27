package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/ports"
)

const (
	StrategyBestFirst = "best_first"
	StrategyGreedy    = "greedy"
)

// Strategy plans a single-day itinerary from the origin.
type Strategy interface {
	Name() string
	Plan(ctx context.Context, start time.Time, limit time.Duration) (*domain.Itinerary, error)
}

// ParseStrategy normalizes a strategy name. Empty selects best-first.
func ParseStrategy(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyBestFirst, "best-first", "bestfirst", "astar", "a*":
		return StrategyBestFirst, nil
	case StrategyGreedy, "nearest_neighbor", "nearest-neighbor":
		return StrategyGreedy, nil
	}
	return "", fmt.Errorf("parse strategy %q: %w", name, domain.ErrUnknownStrategy)
}

func NewStrategy(
	name string,
	c *domain.Catalog,
	travel ports.TravelTimeProvider,
	opts ...Option,
) (Strategy, error) {
	normalized, err := ParseStrategy(name)
	if err != nil {
		return nil, err
	}

	var s Strategy
	if normalized == StrategyGreedy {
		s, err = NewNearestNeighbor(c, travel, opts...)
	} else {
		s, err = NewBestFirstSearch(c, travel, opts...)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
