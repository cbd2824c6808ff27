package ports

import (
	"context"
	"tour-itinerary-service/internal/domain"
)

// SearchObserver receives progress events from a planning strategy.
// Implementations must be safe for concurrent use when shared across runs.
type SearchObserver interface {
	// Called whenever the incumbent route strictly improves.
	OnIncumbent(ctx context.Context, incumbent *domain.Itinerary)
	// Called once when a run terminates.
	OnSearchDone(ctx context.Context, stats domain.SearchStats)
}

// Observers fans events out to every non-nil member.
type Observers []SearchObserver

func (o Observers) OnIncumbent(ctx context.Context, incumbent *domain.Itinerary) {
	for _, obs := range o {
		if obs != nil {
			obs.OnIncumbent(ctx, incumbent)
		}
	}
}

func (o Observers) OnSearchDone(ctx context.Context, stats domain.SearchStats) {
	for _, obs := range o {
		if obs != nil {
			obs.OnSearchDone(ctx, stats)
		}
	}
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) OnIncumbent(context.Context, *domain.Itinerary) {}

func (NopObserver) OnSearchDone(context.Context, domain.SearchStats) {}
