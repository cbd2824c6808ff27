package domain

import "time"

// Stop is one entered location in an itinerary.
// The origin is always the first stop with zero travel.
type Stop struct {
	LocationID int
	Name       string
	Travel     time.Duration
	ArriveAt   time.Time
	Dwell      time.Duration
	DepartAt   time.Time
}

// Itinerary is a planned single-day sightseeing route,
// the output of a planning strategy; it is immutable
// planning data with the aggregate figures derived from its stops.
type Itinerary struct {
	Strategy      string
	StartAt       time.Time
	Deadline      time.Time
	Path          []int
	Stops         []Stop
	NodesExplored int
}

func (it *Itinerary) VisitCount() int { return len(it.Path) }

func (it *Itinerary) TotalTravel() time.Duration {
	var d time.Duration
	for _, s := range it.Stops {
		d += s.Travel
	}
	return d
}

// TotalDwell includes the origin's dwell.
func (it *Itinerary) TotalDwell() time.Duration {
	var d time.Duration
	for _, s := range it.Stops {
		d += s.Dwell
	}
	return d
}

func (it *Itinerary) TotalTime() time.Duration { return it.TotalTravel() + it.TotalDwell() }

// FinishAt is the departure instant from the last stop.
func (it *Itinerary) FinishAt() time.Time {
	if len(it.Stops) == 0 {
		return it.StartAt
	}
	return it.Stops[len(it.Stops)-1].DepartAt
}
