package obs

import (
	"context"
	"tour-itinerary-service/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports planner activity to Prometheus. It implements
// ports.SearchObserver and is safe for concurrent use.
type Metrics struct {
	runs         *prometheus.CounterVec
	statesPopped *prometheus.CounterVec
	duplicates   *prometheus.CounterVec
	improvements *prometheus.CounterVec
	bestVisits   *prometheus.HistogramVec
	latency      *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "itinerary_planner_runs_total",
			Help: "Completed planner runs",
		}, []string{"strategy"}),
		statesPopped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "itinerary_planner_states_popped_total",
			Help: "Frontier pops across planner runs",
		}, []string{"strategy"}),
		duplicates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "itinerary_planner_duplicate_states_total",
			Help: "Pops discarded by the seen-set",
		}, []string{"strategy"}),
		improvements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "itinerary_planner_incumbent_improvements_total",
			Help: "Strict incumbent improvements",
		}, []string{"strategy"}),
		bestVisits: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "itinerary_planner_best_visits",
			Help:    "Visit count of the returned itinerary",
			Buckets: prometheus.LinearBuckets(1, 1, 12),
		}, []string{"strategy"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "itinerary_planner_run_seconds",
			Help:    "Planner run latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"strategy"}),
	}

	reg.MustRegister(m.runs, m.statesPopped, m.duplicates, m.improvements, m.bestVisits, m.latency)
	return m
}

func (m *Metrics) OnIncumbent(_ context.Context, it *domain.Itinerary) {
	m.improvements.WithLabelValues(it.Strategy).Inc()
}

func (m *Metrics) OnSearchDone(_ context.Context, stats domain.SearchStats) {
	m.runs.WithLabelValues(stats.Strategy).Inc()
	m.statesPopped.WithLabelValues(stats.Strategy).Add(float64(stats.Popped))
	m.duplicates.WithLabelValues(stats.Strategy).Add(float64(stats.Duplicates))
	m.bestVisits.WithLabelValues(stats.Strategy).Observe(float64(stats.BestVisits))
	m.latency.WithLabelValues(stats.Strategy).Observe(stats.Elapsed.Seconds())
}
