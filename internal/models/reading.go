package models

import (
	"time"
)

// StatusSeverity represents how serious a BAC status is
type StatusSeverity string

const (
	// SeverityDanger indicates the legal driving limit is exceeded
	SeverityDanger StatusSeverity = "danger"

	// SeverityWarning indicates impairment below the legal limit
	SeverityWarning StatusSeverity = "warning"

	// SeverityInfo indicates measurable but mild effects
	SeverityInfo StatusSeverity = "info"

	// SeveritySuccess indicates a sober reading
	SeveritySuccess StatusSeverity = "success"
)

// Status is the qualitative classification of a BAC value
type Status struct {
	// Severity is the impairment bucket the value falls in
	Severity StatusSeverity

	// Message is the user-facing advice for the bucket
	Message string

	// Icon is the display glyph for the bucket
	Icon string
}

// Reading is one computed estimate handed to the display boundary,
// either per monitoring tick or as a one-shot snapshot
type Reading struct {
	// BAC is the estimated blood alcohol content, unrounded.
	// Display precision is a presentation concern.
	BAC float64

	// ElapsedHours is the total time since the first drink: the
	// user-supplied offset plus any measured monitoring duration
	ElapsedHours float64

	// Hours, Minutes and Seconds break ElapsedHours down for display
	Hours   int
	Minutes int
	Seconds int

	// Status classifies the BAC value
	Status Status

	// Monitoring indicates whether the reading came from the live loop
	// or from a static snapshot
	Monitoring bool

	// At is when the reading was computed
	At time.Time
}
