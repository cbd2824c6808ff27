package domain

import "time"

// SearchStats summarizes one planning run.
//
// Popped counts frontier pops, Duplicates the pops discarded by the seen-set,
// Expanded the pops that generated successors and Pushed the successors.
// The greedy baseline reports one expansion per step.
type SearchStats struct {
	Strategy   string
	Popped     int
	Expanded   int
	Duplicates int
	Pushed     int
	BestVisits int
	Elapsed    time.Duration
}
