package domain

import "errors"

var (
	// ErrMalformedTime is returned when a clock or time-of-day string cannot be parsed.
	ErrMalformedTime = errors.New("malformed time")

	// ErrInvalidCatalog is returned when a location list violates catalog invariants.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrUnknownLocation is returned when a location id is outside the catalog.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrUnknownStrategy is returned for an unrecognized planning strategy name.
	ErrUnknownStrategy = errors.New("unknown strategy")
)
