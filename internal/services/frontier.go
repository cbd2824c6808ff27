package services

import (
	"slices"
)

type frontierEntry struct {
	key   PriorityKey
	state *SearchState
}

// frontier implements heap.Interface as a min-heap of scored states.
type frontier []frontierEntry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool { return compareEntries(f[i], f[j]) < 0 }

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierEntry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	old[n-1] = frontierEntry{}
	*f = old[:n-1]
	return e
}

// compareEntries is a total order: equal keys fall back to location, visited
// set, clock and finally path, so the pop sequence is reproducible.
func compareEntries(a, b frontierEntry) int {
	if c := a.key.Compare(b.key); c != 0 {
		return c
	}
	if c := a.state.Location - b.state.Location; c != 0 {
		return c
	}
	if c := a.state.Visited.Compare(b.state.Visited); c != 0 {
		return c
	}
	if c := a.state.Clock.Compare(b.state.Clock); c != 0 {
		return c
	}
	return slices.Compare(a.state.Path, b.state.Path)
}
