package domain

import "time"

// OriginID is the fixed starting point of every itinerary.
const OriginID = 0

// Location is an immutable point of interest.
// BaselineTravel is the travel time from the origin and feeds the distance model.
type Location struct {
	ID             int
	Name           string
	BaselineTravel time.Duration
	Dwell          time.Duration
	OpensAt        TimeOfDay
	ClosesAt       TimeOfDay
}

// OpenAt reports whether tod falls inside the opening window, both ends inclusive.
func (l Location) OpenAt(tod TimeOfDay) bool {
	return l.OpensAt <= tod && tod <= l.ClosesAt
}
