package services

import (
	"time"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/ports"
)

// leg is one candidate move from the current location to an unvisited one.
type leg struct {
	to     int
	travel time.Duration
	dwell  time.Duration
	arrive time.Time
	depart time.Time
}

// constraints holds the per-run feasibility rules shared by every strategy.
type constraints struct {
	catalog  *domain.Catalog
	travel   ports.TravelTimeProvider
	windows  TimeWindows
	policy   WindowPolicy
	deadline time.Time
}

func newConstraints(
	c *domain.Catalog,
	travel ports.TravelTimeProvider,
	policy WindowPolicy,
	deadline time.Time,
) *constraints {
	return &constraints{
		catalog:  c,
		travel:   travel,
		windows:  NewTimeWindows(c),
		policy:   policy,
		deadline: deadline,
	}
}

// feasibleLeg builds the move from -> to starting at clock, rejecting it when
// the departure passes the deadline or the arrival falls outside the window.
func (c *constraints) feasibleLeg(from, to int, clock time.Time) (leg, bool) {
	travel := c.travel.TravelTime(from, to)
	dwell := c.catalog.At(to).Dwell

	arrive := clock.Add(travel)
	depart := arrive.Add(dwell)

	if depart.After(c.deadline) {
		return leg{}, false
	}
	if !c.windows.IsOpen(to, arrive) {
		return leg{}, false
	}
	if c.policy == WholeVisit && !c.windows.IsOpen(to, depart) {
		return leg{}, false
	}

	return leg{to: to, travel: travel, dwell: dwell, arrive: arrive, depart: depart}, true
}
