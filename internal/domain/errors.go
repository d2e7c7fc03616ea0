package domain

import "errors"

var (
	// ErrInvalidConfiguration is returned when a scenario or profile cannot be
	// projected, e.g. an unknown enumerated value.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrEmptyProjection is returned when metrics are requested for a projection
	// with no years.
	ErrEmptyProjection = errors.New("empty projection")

	// ErrScenarioNotFound is returned by scenario lookups.
	ErrScenarioNotFound = errors.New("scenario not found")
)
