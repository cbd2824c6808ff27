package services

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"time"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/platform/obs"
	"tour-itinerary-service/internal/ports"
)

// signatureQuantum is the clock granularity of the seen-set.
const signatureQuantum = 15 * time.Minute

// SearchState is one partial route. States are never mutated; every
// transition produces a new state.
type SearchState struct {
	Location int
	Visited  domain.VisitedSet
	Clock    time.Time
	Cost     time.Duration
	Path     []int
}

func (s *SearchState) VisitCount() int { return len(s.Path) }

func (s *SearchState) extend(l leg) *SearchState {
	path := make([]int, len(s.Path), len(s.Path)+1)
	copy(path, s.Path)

	return &SearchState{
		Location: l.to,
		Visited:  s.Visited.With(l.to),
		Clock:    l.depart,
		Cost:     s.Cost + l.travel + l.dwell,
		Path:     append(path, l.to),
	}
}

// signature is the quantized state class used for deduplication. States that
// share location and visited set and whose clocks fall in the same
// quarter-hour bucket are treated as equivalent.
type signature struct {
	location int
	visited  string
	hour     int
	quarter  int
}

func signatureOf(s *SearchState) signature {
	return signature{
		location: s.Location,
		visited:  s.Visited.Key(),
		hour:     s.Clock.Hour(),
		quarter:  s.Clock.Minute() / int(signatureQuantum/time.Minute),
	}
}

// BestFirstSearch plans an itinerary with a priority-queue driven best-first
// search over (location, visited set, clock) states.
//
// The objective is lexicographic: most locations visited, then least total
// time. The incumbent is replaced only on a strict increase in visit count,
// so among routes of the best count the first one popped wins.
//
// A BestFirstSearch holds no per-run state; concurrent Plan calls are safe.
type BestFirstSearch struct {
	catalog *domain.Catalog
	travel  ports.TravelTimeProvider
	opts    options
}

func NewBestFirstSearch(
	c *domain.Catalog,
	travel ports.TravelTimeProvider,
	opts ...Option,
) (*BestFirstSearch, error) {
	if err := checkInputs(c, travel); err != nil {
		return nil, fmt.Errorf("new best-first search: %w", err)
	}

	o := applyOptions(opts)
	if o.scorer == nil {
		o.scorer = CostPlusEstimate{Estimator: NewCheapestStops(c, travel, DefaultLookahead)}
	}

	return &BestFirstSearch{catalog: c, travel: travel, opts: o}, nil
}

func (s *BestFirstSearch) Name() string { return StrategyBestFirst }

// Plan runs the search to frontier exhaustion and returns the incumbent.
// The clock starts after the origin's dwell; the deadline is start + limit.
func (s *BestFirstSearch) Plan(
	ctx context.Context,
	start time.Time,
	limit time.Duration,
) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "search.best_first")(&err)

	began := time.Now()
	deadline := start.Add(limit)
	rules := newConstraints(s.catalog, s.travel, s.opts.policy, deadline)

	root := &SearchState{
		Location: domain.OriginID,
		Visited:  domain.NewVisitedSet(domain.OriginID),
		Clock:    start.Add(s.catalog.Origin().Dwell),
		Path:     []int{domain.OriginID},
	}

	open := &frontier{}
	heap.Push(open, frontierEntry{key: PriorityKey{Visits: root.VisitCount()}, state: root})

	seen := make(map[signature]struct{})
	incumbent := root
	stats := domain.SearchStats{Strategy: StrategyBestFirst, BestVisits: root.VisitCount()}

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("best-first search: %w", err)
		}

		state := heap.Pop(open).(frontierEntry).state
		stats.Popped++

		sig := signatureOf(state)
		if _, ok := seen[sig]; ok {
			stats.Duplicates++
			continue
		}
		seen[sig] = struct{}{}
		stats.Expanded++

		if state.VisitCount() > incumbent.VisitCount() {
			incumbent = state
			stats.BestVisits = state.VisitCount()
			s.opts.observer.OnIncumbent(ctx, buildItinerary(StrategyBestFirst, s.catalog, s.travel, incumbent.Path, start, deadline))
		}

		for next := 0; next < s.catalog.Len(); next++ {
			if state.Visited.Contains(next) {
				continue
			}

			l, ok := rules.feasibleLeg(state.Location, next, state.Clock)
			if !ok {
				continue
			}

			succ := state.extend(l)
			heap.Push(open, frontierEntry{key: s.opts.scorer.Score(succ), state: succ})
			stats.Pushed++
		}
	}

	it := buildItinerary(StrategyBestFirst, s.catalog, s.travel, incumbent.Path, start, deadline)
	it.NodesExplored = stats.Popped

	stats.Elapsed = time.Since(began)
	s.opts.observer.OnSearchDone(ctx, stats)

	return it, nil
}

func checkInputs(c *domain.Catalog, travel ports.TravelTimeProvider) error {
	if c == nil {
		return errors.New("catalog must be non-nil")
	}
	if travel == nil {
		return errors.New("travel time provider must be non-nil")
	}
	if travel.Size() != c.Len() {
		return fmt.Errorf("travel time provider covers %d locations, catalog has %d", travel.Size(), c.Len())
	}
	return nil
}
