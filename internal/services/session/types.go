package session

import (
	"github.com/KirkDiggler/bacmon/internal/common/clock"
	"github.com/KirkDiggler/bacmon/internal/common/uuid"
	"github.com/KirkDiggler/bacmon/internal/models"
	sessionRepo "github.com/KirkDiggler/bacmon/internal/repositories/session"
)

// Bounds enforced on drink and profile edits
const (
	// MaxVolumeOz is the largest accepted single-drink volume
	MaxVolumeOz = 40.0

	// MaxABVPercent is the largest accepted alcohol percentage
	MaxABVPercent = 100.0

	// MinWeightLbs is the smallest accepted body weight
	MinWeightLbs = 50.0

	// MaxWeightLbs is the largest accepted body weight
	MaxWeightLbs = 500.0

	// MaxOffsetHours is the largest accepted first-drink offset
	MaxOffsetHours = 24.0
)

// Defaults applied to a fresh session when no seed values are given
const (
	// DefaultGender is the body profile gender for a fresh session
	DefaultGender = models.GenderMale

	// DefaultWeightLbs is the body weight for a fresh session
	DefaultWeightLbs = 160.0

	// DefaultFood is the stomach state for a fresh session
	DefaultFood = models.FoodEmptyStomach
)

// Config holds configuration for the session service
type Config struct {
	// Repository persists the session state
	Repository sessionRepo.Repository

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator provides identifiers for sessions and drinks
	UUIDGenerator uuid.UUID
}

// CreateSessionInput contains seed values for a fresh session
type CreateSessionInput struct {
	// Gender seeds the body profile; DefaultGender when empty
	Gender models.Gender

	// WeightLbs seeds the body weight; DefaultWeightLbs when zero
	WeightLbs float64

	// Food seeds the stomach state; DefaultFood when empty
	Food models.FoodIntake

	// FirstDrinkOffsetHours seeds how long ago drinking began
	FirstDrinkOffsetHours float64
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	// Session is the freshly installed session
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving the current session
type GetSessionInput struct {
}

// GetSessionOutput contains the current session
type GetSessionOutput struct {
	// Session is a copy of the current session
	Session *models.Session
}

// AddDrinkInput contains parameters for adding a drink
type AddDrinkInput struct {
}

// AddDrinkOutput contains the result of adding a drink
type AddDrinkOutput struct {
	// Drink is the newly appended drink
	Drink *models.Drink
}

// UpdateDrinkInput contains parameters for editing a drink
type UpdateDrinkInput struct {
	// DrinkID identifies the drink to edit
	DrinkID string

	// VolumeOz, when set, replaces the drink's volume
	VolumeOz *float64

	// ABVPercent, when set, replaces the drink's alcohol percentage
	ABVPercent *float64
}

// UpdateDrinkOutput contains the result of editing a drink
type UpdateDrinkOutput struct {
	// Drink is the drink after the edit
	Drink *models.Drink
}

// RemoveDrinkInput contains parameters for removing a drink
type RemoveDrinkInput struct {
	// DrinkID identifies the drink to remove
	DrinkID string
}

// RemoveDrinkOutput contains the result of removing a drink
type RemoveDrinkOutput struct {
	// Removed reports whether a drink was actually removed
	Removed bool
}

// SetProfileInput contains parameters for updating the body profile
type SetProfileInput struct {
	// Gender is the body profile gender
	Gender models.Gender

	// WeightLbs is the body weight in pounds
	WeightLbs float64

	// Food is the stomach state
	Food models.FoodIntake
}

// SetProfileOutput contains the result of updating the body profile
type SetProfileOutput struct {
	// Session is the session after the update
	Session *models.Session
}

// SetFirstDrinkOffsetInput contains parameters for updating the offset
type SetFirstDrinkOffsetInput struct {
	// Hours is the time since the first drink, in hours
	Hours float64
}

// SetFirstDrinkOffsetOutput contains the result of updating the offset
type SetFirstDrinkOffsetOutput struct {
	// Session is the session after the update
	Session *models.Session
}

// StartMonitoringInput contains parameters for starting monitoring
type StartMonitoringInput struct {
}

// StartMonitoringOutput contains the result of starting monitoring
type StartMonitoringOutput struct {
	// Session is the session after monitoring started
	Session *models.Session
}

// StopMonitoringInput contains parameters for stopping monitoring
type StopMonitoringInput struct {
}

// StopMonitoringOutput contains the result of stopping monitoring
type StopMonitoringOutput struct {
	// WasActive reports whether monitoring was active before the call
	WasActive bool

	// Session is the session after monitoring stopped
	Session *models.Session
}
