package distance

import (
	"time"
	"tour-itinerary-service/internal/domain"
)

// DefaultTransferPenalty is added to every non-origin leg.
const DefaultTransferPenalty = 5 * time.Minute

// BaselineMatrix derives pairwise travel times from each location's
// baseline travel figure.
//
// Origin legs use the raw baseline of the other end. Legs between two
// non-origin stops cost the difference of their baselines plus a fixed
// transfer penalty. This is a coarse proxy, not geographic distance.
//
// The matrix is computed eagerly and is safe for concurrent reads.
type BaselineMatrix struct {
	n     int
	cells []time.Duration
}

func NewBaselineMatrix(c *domain.Catalog, penalty time.Duration) *BaselineMatrix {
	n := c.Len()
	m := &BaselineMatrix{n: n, cells: make([]time.Duration, n*n)}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.cells[i*n+j] = baselineLeg(c.At(i), c.At(j), penalty)
		}
	}

	return m
}

func baselineLeg(a, b domain.Location, penalty time.Duration) time.Duration {
	switch {
	case a.ID == b.ID:
		return 0
	case a.ID == domain.OriginID:
		return b.BaselineTravel
	case b.ID == domain.OriginID:
		return a.BaselineTravel
	}

	diff := a.BaselineTravel - b.BaselineTravel
	if diff < 0 {
		diff = -diff
	}
	return diff + penalty
}

func (m *BaselineMatrix) TravelTime(from, to int) time.Duration {
	return m.cells[from*m.n+to]
}

func (m *BaselineMatrix) Size() int { return m.n }
