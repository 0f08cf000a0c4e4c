package monitor

import (
	"time"

	"github.com/KirkDiggler/bacmon/internal/common/clock"
	"github.com/KirkDiggler/bacmon/internal/models"
	"github.com/KirkDiggler/bacmon/internal/services/session"
)

// DefaultInterval is how often a reading is published while monitoring
const DefaultInterval = 10 * time.Second

// Config holds configuration for the monitor service
type Config struct {
	// SessionService owns session state and monitoring transitions
	SessionService session.Service

	// Clock provides the current time and tick scheduling
	Clock clock.Clock

	// Sink receives each computed reading
	Sink Sink

	// Interval is the time between readings; DefaultInterval when zero
	Interval time.Duration
}

// StartMonitoringInput contains parameters for starting the loop
type StartMonitoringInput struct {
}

// StartMonitoringOutput contains the result of starting the loop
type StartMonitoringOutput struct {
	// Session is the session after monitoring started
	Session *models.Session
}

// StopMonitoringInput contains parameters for stopping the loop
type StopMonitoringInput struct {
}

// StopMonitoringOutput contains the result of stopping the loop
type StopMonitoringOutput struct {
	// WasActive reports whether monitoring was active before the call
	WasActive bool
}

// SnapshotInput contains parameters for computing a one-shot reading
type SnapshotInput struct {
}

// SnapshotOutput contains a one-shot reading and display hints
type SnapshotOutput struct {
	// Reading is the computed estimate
	Reading *models.Reading

	// HasDrinks reports whether the session holds any drinks
	HasDrinks bool

	// HasAlcohol reports whether the recorded drinks contain any alcohol
	HasAlcohol bool
}
