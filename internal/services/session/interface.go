package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/bacmon/internal/services/session Service

import (
	"context"
)

// Service defines the interface for managing the drinking session
type Service interface {
	// CreateSession installs a fresh session, replacing the current one
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession retrieves the current session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// AddDrink appends a zero-valued drink to the current session
	AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error)

	// UpdateDrink modifies the volume and alcohol content of a drink
	UpdateDrink(ctx context.Context, input *UpdateDrinkInput) (*UpdateDrinkOutput, error)

	// RemoveDrink removes a drink from the current session
	RemoveDrink(ctx context.Context, input *RemoveDrinkInput) (*RemoveDrinkOutput, error)

	// SetProfile updates the body profile used for estimation
	SetProfile(ctx context.Context, input *SetProfileInput) (*SetProfileOutput, error)

	// SetFirstDrinkOffset records how many hours before now drinking began
	SetFirstDrinkOffset(ctx context.Context, input *SetFirstDrinkOffsetInput) (*SetFirstDrinkOffsetOutput, error)

	// StartMonitoring marks the session as actively monitored
	StartMonitoring(ctx context.Context, input *StartMonitoringInput) (*StartMonitoringOutput, error)

	// StopMonitoring clears the monitoring state
	StopMonitoring(ctx context.Context, input *StopMonitoringInput) (*StopMonitoringOutput, error)
}
