package services

import (
	"time"
	"tour-itinerary-service/internal/domain"
)

// WindowPolicy selects which instants of a visit must fall inside the
// location's opening window.
type WindowPolicy int

const (
	// ArrivalOnly checks only the arrival instant. The departure is bounded
	// by the day-level deadline, not by the location's closing time.
	ArrivalOnly WindowPolicy = iota
	// WholeVisit additionally requires the departure instant to be inside the window.
	WholeVisit
)

func (p WindowPolicy) String() string {
	if p == WholeVisit {
		return "whole_visit"
	}
	return "arrival_only"
}

// TimeWindows answers opening-hour queries against a catalog.
type TimeWindows struct {
	catalog *domain.Catalog
}

func NewTimeWindows(c *domain.Catalog) TimeWindows {
	return TimeWindows{catalog: c}
}

// IsOpen reports whether the location may be entered at the given instant.
// Only the time-of-day component of at is considered.
func (w TimeWindows) IsOpen(id int, at time.Time) bool {
	return w.catalog.At(id).OpenAt(domain.TimeOfDayOf(at))
}
