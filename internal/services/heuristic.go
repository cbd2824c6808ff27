package services

import (
	"cmp"
	"slices"
	"time"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/ports"
)

// DefaultLookahead is the number of cheapest remaining stops summed by the estimator.
const DefaultLookahead = 3

// Estimator estimates the time still needed from a partial route.
type Estimator interface {
	EstimateRemaining(visited domain.VisitedSet, current int) time.Duration
}

// CheapestStops sums travel-plus-dwell of the k cheapest unvisited stops
// reachable directly from the current location.
//
// It only biases exploration order. It is not a certified lower bound for the
// count-first objective, so the search is best-first rather than optimal A*.
type CheapestStops struct {
	catalog *domain.Catalog
	travel  ports.TravelTimeProvider
	k       int
}

func NewCheapestStops(c *domain.Catalog, travel ports.TravelTimeProvider, k int) *CheapestStops {
	if k <= 0 {
		k = DefaultLookahead
	}
	return &CheapestStops{catalog: c, travel: travel, k: k}
}

func (e *CheapestStops) EstimateRemaining(visited domain.VisitedSet, current int) time.Duration {
	costs := make([]time.Duration, 0, e.catalog.Len())
	for id := 0; id < e.catalog.Len(); id++ {
		if visited.Contains(id) {
			continue
		}
		costs = append(costs, e.travel.TravelTime(current, id)+e.catalog.At(id).Dwell)
	}

	slices.Sort(costs)
	if len(costs) > e.k {
		costs = costs[:e.k]
	}

	var sum time.Duration
	for _, c := range costs {
		sum += c
	}
	return sum
}

// PriorityKey orders frontier entries: lower FScore first, then more visits,
// then lower accumulated cost.
type PriorityKey struct {
	FScore time.Duration
	Visits int
	Cost   time.Duration
}

func (k PriorityKey) Compare(o PriorityKey) int {
	if c := cmp.Compare(k.FScore, o.FScore); c != 0 {
		return c
	}
	if c := cmp.Compare(o.Visits, k.Visits); c != 0 {
		return c
	}
	return cmp.Compare(k.Cost, o.Cost)
}

// Scorer maps a search state to its frontier priority.
type Scorer interface {
	Score(state *SearchState) PriorityKey
}

// CostPlusEstimate scores a state as accumulated cost plus the estimator's remainder.
type CostPlusEstimate struct {
	Estimator Estimator
}

func (s CostPlusEstimate) Score(state *SearchState) PriorityKey {
	return PriorityKey{
		FScore: state.Cost + s.Estimator.EstimateRemaining(state.Visited, state.Location),
		Visits: state.VisitCount(),
		Cost:   state.Cost,
	}
}
