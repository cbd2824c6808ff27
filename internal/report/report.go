// Package report renders itineraries as human-readable text.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"tour-itinerary-service/internal/domain"
)

const rule = "============================================================"

// Summary holds the aggregate figures of an itinerary.
type Summary struct {
	Strategy    string
	Path        []int
	Names       []string
	Visits      int
	TotalTravel time.Duration
	TotalDwell  time.Duration
	TotalTime   time.Duration
	FinishAt    time.Time
}

func Summarize(it *domain.Itinerary) Summary {
	names := make([]string, 0, len(it.Stops))
	for _, s := range it.Stops {
		names = append(names, s.Name)
	}

	return Summary{
		Strategy:    it.Strategy,
		Path:        append([]int(nil), it.Path...),
		Names:       names,
		Visits:      it.VisitCount(),
		TotalTravel: it.TotalTravel(),
		TotalDwell:  it.TotalDwell(),
		TotalTime:   it.TotalTime(),
		FinishAt:    it.FinishAt(),
	}
}

// WriteHeader prints the run banner: origin, start clock and deadline.
func WriteHeader(w io.Writer, origin string, start time.Time, limitHours float64, deadline time.Time) error {
	_, err := fmt.Fprintf(w, "Start at %s at %s\nTime limit: %g hours (until %s)\n%s\n",
		origin, domain.FormatClock(start), limitHours, domain.FormatClock(deadline), rule)
	return err
}

// WriteStops prints every leg after the origin.
func WriteStops(w io.Writer, it *domain.Itinerary) error {
	for _, s := range it.Stops[1:] {
		_, err := fmt.Fprintf(w,
			"-> %s\n   Travel: %d min -> arrive %s\n   Visit: %d min\n   Done at: %s\n\n",
			s.Name, minutes(s.Travel), domain.FormatClock(s.ArriveAt), minutes(s.Dwell), domain.FormatClock(s.DepartAt),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints the final result block of an itinerary.
func WriteSummary(w io.Writer, it *domain.Itinerary, catalogSize int) error {
	s := Summarize(it)

	var b strings.Builder
	fmt.Fprintf(&b, "RESULT (%s)\n%s\n", s.Strategy, rule)
	fmt.Fprintf(&b, "Route: %s\n", strings.Join(s.Names, " -> "))
	fmt.Fprintf(&b, "Total time: %d min (%.1f hours)\n", minutes(s.TotalTime), s.TotalTime.Hours())
	fmt.Fprintf(&b, "Locations visited: %d/%d\n", s.Visits, catalogSize)
	fmt.Fprintf(&b, "Travel time: %d min\n", minutes(s.TotalTravel))
	fmt.Fprintf(&b, "Visit time: %d min\n", minutes(s.TotalDwell))
	fmt.Fprintf(&b, "Finish at: %s\n", domain.FormatClock(s.FinishAt))
	if it.NodesExplored > 0 {
		fmt.Fprintf(&b, "States explored: %d\n", it.NodesExplored)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func minutes(d time.Duration) int64 { return int64(d / time.Minute) }

// TraceWriter prints each incumbent improvement and the final search
// statistics. It implements ports.SearchObserver.
type TraceWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{w: w}
}

func (t *TraceWriter) OnIncumbent(_ context.Context, it *domain.Itinerary) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.w, "[%s] better route with %d locations:\n", it.Strategy, it.VisitCount())
	_ = WriteStops(t.w, it)
}

func (t *TraceWriter) OnSearchDone(_ context.Context, stats domain.SearchStats) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.w, "[%s] explored %d states (%d duplicates) in %s\n\n",
		stats.Strategy, stats.Popped, stats.Duplicates, stats.Elapsed.Round(time.Microsecond))
}
