package report

import (
	"bytes"
	"context"
	"testing"
	"time"
	"tour-itinerary-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItinerary(t *testing.T) *domain.Itinerary {
	t.Helper()
	start, err := domain.ParseClock("08:00")
	require.NoError(t, err)

	at := func(m int) time.Time { return start.Add(time.Duration(m) * time.Minute) }

	return &domain.Itinerary{
		Strategy: "best_first",
		StartAt:  start,
		Deadline: at(360),
		Path:     []int{0, 6, 1},
		Stops: []domain.Stop{
			{LocationID: 0, Name: "Hoan Kiem Lake", ArriveAt: start, DepartAt: start},
			{LocationID: 6, Name: "One Pillar Pagoda", Travel: 5 * time.Minute, ArriveAt: at(5), Dwell: 30 * time.Minute, DepartAt: at(35)},
			{LocationID: 1, Name: "Old Quarter", Travel: 10 * time.Minute, ArriveAt: at(45), Dwell: 90 * time.Minute, DepartAt: at(135)},
		},
		NodesExplored: 12,
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleItinerary(t))

	assert.Equal(t, 3, s.Visits)
	assert.Equal(t, []string{"Hoan Kiem Lake", "One Pillar Pagoda", "Old Quarter"}, s.Names)
	assert.Equal(t, 15*time.Minute, s.TotalTravel)
	assert.Equal(t, 120*time.Minute, s.TotalDwell)
	assert.Equal(t, 135*time.Minute, s.TotalTime)
	assert.Equal(t, "10:15", domain.FormatClock(s.FinishAt))
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, sampleItinerary(t), 7))

	out := buf.String()
	assert.Contains(t, out, "RESULT (best_first)")
	assert.Contains(t, out, "Route: Hoan Kiem Lake -> One Pillar Pagoda -> Old Quarter")
	assert.Contains(t, out, "Total time: 135 min (")
	assert.Contains(t, out, "Locations visited: 3/7")
	assert.Contains(t, out, "Travel time: 15 min")
	assert.Contains(t, out, "Visit time: 120 min")
	assert.Contains(t, out, "Finish at: 10:15")
	assert.Contains(t, out, "States explored: 12")
}

func TestWriteHeader(t *testing.T) {
	start, err := domain.ParseClock("08:00")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, "Hoan Kiem Lake", start, 6, start.Add(6*time.Hour)))
	assert.Contains(t, buf.String(), "Start at Hoan Kiem Lake at 08:00")
	assert.Contains(t, buf.String(), "Time limit: 6 hours (until 14:00)")
}

func TestTraceWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTraceWriter(&buf)

	tw.OnIncumbent(context.Background(), sampleItinerary(t))
	tw.OnSearchDone(context.Background(), domain.SearchStats{Strategy: "best_first", Popped: 12, Duplicates: 3})

	out := buf.String()
	assert.Contains(t, out, "[best_first] better route with 3 locations:")
	assert.Contains(t, out, "-> One Pillar Pagoda\n   Travel: 5 min -> arrive 08:05\n   Visit: 30 min\n   Done at: 08:35")
	assert.Contains(t, out, "-> Old Quarter")
	assert.NotContains(t, out, "-> Hoan Kiem Lake")
	assert.Contains(t, out, "[best_first] explored 12 states (3 duplicates)")
}
