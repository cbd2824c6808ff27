package services

import (
	"context"
	"fmt"
	"math"
	"time"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/platform/obs"
	"tour-itinerary-service/internal/ports"
)

// NearestNeighbor plans an itinerary using a greedy nearest-neighbor algorithm.
//
// The algorithm minimizes immediate travel time at each step among the
// feasible unvisited locations. It does not backtrack or look ahead; it is a
// fast comparison baseline for BestFirstSearch, not an optimizer.
type NearestNeighbor struct {
	catalog *domain.Catalog
	travel  ports.TravelTimeProvider
	opts    options
}

func NewNearestNeighbor(
	c *domain.Catalog,
	travel ports.TravelTimeProvider,
	opts ...Option,
) (*NearestNeighbor, error) {
	if err := checkInputs(c, travel); err != nil {
		return nil, fmt.Errorf("new nearest neighbor: %w", err)
	}
	return &NearestNeighbor{catalog: c, travel: travel, opts: applyOptions(opts)}, nil
}

func (g *NearestNeighbor) Name() string { return StrategyGreedy }

func (g *NearestNeighbor) Plan(
	ctx context.Context,
	start time.Time,
	limit time.Duration,
) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "search.greedy")(&err)

	began := time.Now()
	deadline := start.Add(limit)
	rules := newConstraints(g.catalog, g.travel, g.opts.policy, deadline)

	currentLocation := domain.OriginID
	currentTime := start.Add(g.catalog.Origin().Dwell)
	visited := domain.NewVisitedSet(domain.OriginID)
	path := []int{domain.OriginID}

	stats := domain.SearchStats{Strategy: StrategyGreedy, BestVisits: 1}

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("nearest neighbor: %w", err)
		}

		var best leg
		found := false
		minTravel := time.Duration(math.MaxInt64)

		// Select next stop by minimum travel time (greedy step).
		// The ascending id scan keeps the first candidate on ties.
		for next := 0; next < g.catalog.Len(); next++ {
			if visited.Contains(next) {
				continue
			}

			l, ok := rules.feasibleLeg(currentLocation, next, currentTime)
			if !ok {
				continue
			}
			stats.Pushed++

			if l.travel < minTravel {
				minTravel = l.travel
				best = l
				found = true
			}
		}
		stats.Popped++
		stats.Expanded++

		if !found {
			break
		}

		visited = visited.With(best.to)
		path = append(path, best.to)
		currentLocation = best.to
		currentTime = best.depart

		stats.BestVisits = len(path)
		g.opts.observer.OnIncumbent(ctx, buildItinerary(StrategyGreedy, g.catalog, g.travel, path, start, deadline))
	}

	it := buildItinerary(StrategyGreedy, g.catalog, g.travel, path, start, deadline)
	it.NodesExplored = stats.Popped

	stats.Elapsed = time.Since(began)
	g.opts.observer.OnSearchDone(ctx, stats)

	return it, nil
}
