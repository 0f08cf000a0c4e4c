package monitor

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/bacmon/internal/services/monitor Service,Sink

import (
	"context"

	"github.com/KirkDiggler/bacmon/internal/models"
)

// Service defines the interface for the live monitoring loop
type Service interface {
	// StartMonitoring begins the periodic reading loop
	StartMonitoring(ctx context.Context, input *StartMonitoringInput) (*StartMonitoringOutput, error)

	// StopMonitoring halts the reading loop
	StopMonitoring(ctx context.Context, input *StopMonitoringInput) (*StopMonitoringOutput, error)

	// Snapshot computes a single reading without starting the loop
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)
}

// Sink receives each computed reading
type Sink interface {
	Publish(ctx context.Context, reading *models.Reading) error
}
