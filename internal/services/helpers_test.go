package services

import (
	"context"
	"sync"
	"testing"
	"time"
	"tour-itinerary-service/internal/adapters/distance"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/ports"

	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu         sync.Mutex
	incumbents []*domain.Itinerary
	done       []domain.SearchStats
}

func (r *recordingObserver) OnIncumbent(_ context.Context, it *domain.Itinerary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.incumbents = append(r.incumbents, it)
}

func (r *recordingObserver) OnSearchDone(_ context.Context, stats domain.SearchStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done = append(r.done, stats)
}

type staticRepo struct {
	catalog *domain.Catalog
	err     error
}

func (s staticRepo) LoadCatalog(context.Context) (*domain.Catalog, error) {
	return s.catalog, s.err
}

func clock(t *testing.T, s string) time.Time {
	t.Helper()
	c, err := domain.ParseClock(s)
	require.NoError(t, err)
	return c
}

func hours(h float64) time.Duration { return time.Duration(h * float64(time.Hour)) }

func referenceInputs() (*domain.Catalog, ports.TravelTimeProvider) {
	c := domain.ReferenceCatalog()
	return c, distance.NewBaselineMatrix(c, distance.DefaultTransferPenalty)
}

func planWith(t *testing.T, name, start string, limit time.Duration, opts ...Option) *domain.Itinerary {
	t.Helper()
	c, m := referenceInputs()
	s, err := NewStrategy(name, c, m, opts...)
	require.NoError(t, err)

	it, err := s.Plan(context.Background(), clock(t, start), limit)
	require.NoError(t, err)
	return it
}

// requireValidItinerary checks the route invariants every strategy must hold:
// origin first, no repeats, arrivals inside opening windows, consistent
// clock replay and no departure after the deadline.
func requireValidItinerary(t *testing.T, c *domain.Catalog, m ports.TravelTimeProvider, it *domain.Itinerary, policy WindowPolicy) {
	t.Helper()
	windows := NewTimeWindows(c)

	require.NotEmpty(t, it.Path)
	require.Equal(t, domain.OriginID, it.Path[0])
	require.Len(t, it.Stops, len(it.Path))

	seen := map[int]bool{}
	for i, id := range it.Path {
		require.False(t, seen[id], "location %d repeated in %v", id, it.Path)
		seen[id] = true

		stop := it.Stops[i]
		require.Equal(t, id, stop.LocationID)
		require.Equal(t, stop.ArriveAt.Add(stop.Dwell), stop.DepartAt)

		if i == 0 {
			continue
		}
		prev := it.Stops[i-1]
		require.Equal(t, m.TravelTime(prev.LocationID, id), stop.Travel)
		require.Equal(t, prev.DepartAt.Add(stop.Travel), stop.ArriveAt)
		require.True(t, windows.IsOpen(id, stop.ArriveAt), "%s closed at arrival %s", stop.Name, domain.FormatClock(stop.ArriveAt))
		require.False(t, stop.DepartAt.After(it.Deadline), "%s departs %s after deadline", stop.Name, domain.FormatClock(stop.DepartAt))
		if policy == WholeVisit {
			require.True(t, windows.IsOpen(id, stop.DepartAt), "%s closed at departure %s", stop.Name, domain.FormatClock(stop.DepartAt))
		}
	}
}
