package services

import (
	"time"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/ports"
)

// buildItinerary replays path from start, recording arrival and departure
// at every stop. The origin's dwell is spent before the first leg.
func buildItinerary(
	strategy string,
	c *domain.Catalog,
	travel ports.TravelTimeProvider,
	path []int,
	start time.Time,
	deadline time.Time,
) *domain.Itinerary {
	origin := c.Origin()
	clock := start.Add(origin.Dwell)

	stops := make([]domain.Stop, 0, len(path))
	stops = append(stops, domain.Stop{
		LocationID: origin.ID,
		Name:       origin.Name,
		ArriveAt:   start,
		Dwell:      origin.Dwell,
		DepartAt:   clock,
	})

	for i := 1; i < len(path); i++ {
		loc := c.At(path[i])
		t := travel.TravelTime(path[i-1], path[i])

		arrive := clock.Add(t)
		clock = arrive.Add(loc.Dwell)

		stops = append(stops, domain.Stop{
			LocationID: loc.ID,
			Name:       loc.Name,
			Travel:     t,
			ArriveAt:   arrive,
			Dwell:      loc.Dwell,
			DepartAt:   clock,
		})
	}

	return &domain.Itinerary{
		Strategy: strategy,
		StartAt:  start,
		Deadline: deadline,
		Path:     append([]int(nil), path...),
		Stops:    stops,
	}
}
