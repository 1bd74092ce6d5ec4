package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the commentator
	// cards collapse into a list.
	LayoutCompactWidth = 100

	// LayoutNarrowWidth hides the header subtitle.
	LayoutNarrowWidth = 60
)

// Timing constants.
const (
	// HealthInterval is how often the API health indicator is refreshed.
	HealthInterval = 30 * time.Second

	// HealthTimeout bounds a single health probe.
	HealthTimeout = 3 * time.Second

	// ShareTimeout bounds the external share command.
	ShareTimeout = 30 * time.Second
)
