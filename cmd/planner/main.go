// Command planner prints a single-day itinerary for the reference catalog,
// or for a JSON seed file, to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
	"tour-itinerary-service/internal/adapters/repositories"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/platform/obs"
	"tour-itinerary-service/internal/ports"
	"tour-itinerary-service/internal/report"
	"tour-itinerary-service/internal/services"

	"go.uber.org/zap"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "planner:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	start := fs.String("start", "08:00", "start time, HH:MM")
	hours := fs.Float64("hours", 6, "time budget in hours")
	strategy := fs.String("strategy", "both", "both, best_first or greedy")
	strict := fs.Bool("strict", false, "require every visit to end inside its opening window")
	penalty := fs.Duration("penalty", 5*time.Minute, "transfer penalty between non-origin locations")
	seed := fs.String("catalog", "", "JSON seed file; defaults to the built-in catalog")
	trace := fs.Bool("trace", true, "print every incumbent improvement")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		logger, err := obs.NewLogger("console")
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		zap.ReplaceGlobals(logger)
	}

	repo, err := catalogRepo(*seed)
	if err != nil {
		return err
	}
	catalog, err := repo.LoadCatalog(ctx)
	if err != nil {
		return err
	}

	startAt, err := domain.ParseClock(*start)
	if err != nil {
		return err
	}
	deadline := startAt.Add(time.Duration(*hours * float64(time.Hour)))
	if err := report.WriteHeader(out, catalog.Origin().Name, startAt, *hours, deadline); err != nil {
		return err
	}

	observers := ports.Observers{obs.NewLogObserver(zap.L())}
	if *trace {
		observers = append(observers, report.NewTraceWriter(out))
	}

	req := services.PlanTourRequest{
		StartTime:       *start,
		TimeLimitHours:  *hours,
		Strategy:        *strategy,
		StrictWindows:   *strict,
		TransferPenalty: penalty,
	}

	var results []*domain.Itinerary
	if *strategy == "both" {
		// Run sequentially so trace output stays grouped per strategy.
		for _, name := range []string{services.StrategyBestFirst, services.StrategyGreedy} {
			req.Strategy = name
			it, err := services.PlanTour(ctx, req, repo, observers)
			if err != nil {
				return err
			}
			results = append(results, it)
		}
	} else {
		it, err := services.PlanTour(ctx, req, repo, observers)
		if err != nil {
			return err
		}
		results = append(results, it)
	}

	for _, it := range results {
		if err := report.WriteSummary(out, it, catalog.Len()); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if len(results) == 2 {
		cmp := services.Comparison{BestFirst: results[0], Greedy: results[1]}
		fmt.Fprintf(out, "best_first visits %d, greedy visits %d, dominates: %t\n",
			cmp.BestFirst.VisitCount(), cmp.Greedy.VisitCount(), cmp.BestFirstDominates())
	}

	return nil
}

func catalogRepo(seedPath string) (ports.CatalogRepository, error) {
	if seedPath == "" {
		return repositories.NewReferenceCatalogRepository(), nil
	}
	seeds, err := repositories.LoadSeedFile(seedPath)
	if err != nil {
		return nil, err
	}
	c, err := repositories.CatalogFromSeeds(seeds)
	if err != nil {
		return nil, err
	}
	return repositories.NewMemoryCatalogRepository(c), nil
}
