package services

import (
	"tour-itinerary-service/internal/ports"
)

type options struct {
	observer ports.SearchObserver
	policy   WindowPolicy
	scorer   Scorer
}

// Option configures a planning strategy.
type Option func(*options)

// WithObserver registers a progress observer. Nil is ignored.
func WithObserver(o ports.SearchObserver) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

func WithWindowPolicy(p WindowPolicy) Option {
	return func(opts *options) { opts.policy = p }
}

// WithScorer replaces the frontier priority function of the best-first search.
// The greedy baseline ignores it.
func WithScorer(s Scorer) Option {
	return func(opts *options) {
		if s != nil {
			opts.scorer = s
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{observer: ports.NopObserver{}, policy: ArrivalOnly}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
