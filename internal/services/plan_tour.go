package services

import (
	"context"
	"fmt"
	"time"
	"tour-itinerary-service/internal/adapters/distance"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

type PlanTourRequest struct {
	StartTime      string
	TimeLimitHours float64
	Strategy       string
	StrictWindows  bool
	// TransferPenalty overrides distance.DefaultTransferPenalty when set.
	// Zero is a valid override.
	TransferPenalty *time.Duration
}

// Comparison holds the outcome of both strategies on identical inputs.
type Comparison struct {
	BestFirst *domain.Itinerary
	Greedy    *domain.Itinerary
}

// BestFirstDominates reports whether the search visited at least as many
// locations as the greedy baseline.
func (c *Comparison) BestFirstDominates() bool {
	return c.BestFirst.VisitCount() >= c.Greedy.VisitCount()
}

type tourInputs struct {
	catalog *domain.Catalog
	travel  ports.TravelTimeProvider
	start   time.Time
	limit   time.Duration
	opts    []Option
}

// prepareTour loads the catalog, derives the travel-time matrix and parses
// the start time. A malformed start time fails fast with domain.ErrMalformedTime.
func prepareTour(
	ctx context.Context,
	req PlanTourRequest,
	repo ports.CatalogRepository,
	observer ports.SearchObserver,
) (*tourInputs, error) {
	start, err := domain.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}

	catalog, err := repo.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	penalty := distance.DefaultTransferPenalty
	if req.TransferPenalty != nil {
		penalty = *req.TransferPenalty
	}
	if penalty < 0 {
		return nil, fmt.Errorf("transfer penalty %s must not be negative", penalty)
	}

	policy := ArrivalOnly
	if req.StrictWindows {
		policy = WholeVisit
	}

	return &tourInputs{
		catalog: catalog,
		travel:  distance.NewBaselineMatrix(catalog, penalty),
		start:   start,
		limit:   time.Duration(req.TimeLimitHours * float64(time.Hour)),
		opts:    []Option{WithObserver(observer), WithWindowPolicy(policy)},
	}, nil
}

// PlanTour plans a single-day itinerary with the requested strategy.
func PlanTour(
	ctx context.Context,
	req PlanTourRequest,
	repo ports.CatalogRepository,
	observer ports.SearchObserver,
) (*domain.Itinerary, error) {
	in, err := prepareTour(ctx, req, repo, observer)
	if err != nil {
		return nil, fmt.Errorf("plan tour: %w", err)
	}

	strategy, err := NewStrategy(req.Strategy, in.catalog, in.travel, in.opts...)
	if err != nil {
		return nil, fmt.Errorf("plan tour: %w", err)
	}

	it, err := strategy.Plan(ctx, in.start, in.limit)
	if err != nil {
		return nil, fmt.Errorf("plan tour: %s: %w", strategy.Name(), err)
	}

	return it, nil
}

// CompareStrategies runs the best-first search and the greedy baseline
// concurrently on the same catalog and matrix. Each run owns its own
// frontier, seen-set and incumbent; the matrix is shared read-only.
func CompareStrategies(
	ctx context.Context,
	req PlanTourRequest,
	repo ports.CatalogRepository,
	observer ports.SearchObserver,
) (*Comparison, error) {
	in, err := prepareTour(ctx, req, repo, observer)
	if err != nil {
		return nil, fmt.Errorf("compare strategies: %w", err)
	}

	search, err := NewBestFirstSearch(in.catalog, in.travel, in.opts...)
	if err != nil {
		return nil, fmt.Errorf("compare strategies: %w", err)
	}
	greedy, err := NewNearestNeighbor(in.catalog, in.travel, in.opts...)
	if err != nil {
		return nil, fmt.Errorf("compare strategies: %w", err)
	}

	var out Comparison
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		it, err := search.Plan(gctx, in.start, in.limit)
		if err != nil {
			return fmt.Errorf("compare strategies: %s: %w", search.Name(), err)
		}
		out.BestFirst = it
		return nil
	})
	g.Go(func() error {
		it, err := greedy.Plan(gctx, in.start, in.limit)
		if err != nil {
			return fmt.Errorf("compare strategies: %s: %w", greedy.Name(), err)
		}
		out.Greedy = it
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &out, nil
}
