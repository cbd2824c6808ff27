package ports

import "time"

// Contract for pairwise travel time between catalog locations.
// Implementations are read-only after construction and safe for concurrent use.
type TravelTimeProvider interface {
	// Return the travel time between two location ids.
	TravelTime(from, to int) time.Duration
	// Return the number of locations covered.
	Size() int
}
