package obs

import (
	"context"
	"tour-itinerary-service/internal/domain"

	"go.uber.org/zap"
)

// LogObserver reports search progress as structured log lines.
type LogObserver struct {
	Logger *zap.Logger
}

func NewLogObserver(logger *zap.Logger) *LogObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogObserver{Logger: logger}
}

func (o *LogObserver) OnIncumbent(ctx context.Context, it *domain.Itinerary) {
	o.Logger.Debug("incumbent improved",
		zap.String("req_id", RequestID(ctx)),
		zap.String("strategy", it.Strategy),
		zap.Int("visits", it.VisitCount()),
		zap.Ints("path", it.Path),
		zap.Duration("total", it.TotalTime()),
	)
}

func (o *LogObserver) OnSearchDone(ctx context.Context, stats domain.SearchStats) {
	o.Logger.Info("search done",
		zap.String("req_id", RequestID(ctx)),
		zap.String("strategy", stats.Strategy),
		zap.Int("popped", stats.Popped),
		zap.Int("expanded", stats.Expanded),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("pushed", stats.Pushed),
		zap.Int("best_visits", stats.BestVisits),
		zap.Int64("dur_ms", stats.Elapsed.Milliseconds()),
	)
}
