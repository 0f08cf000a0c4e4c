package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/bacmon/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/bacmon/internal/models"
)

// Repository defines the interface for session persistence
type Repository interface {
	// SaveSession persists a session and marks it as the current one
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetCurrentSession retrieves the current session
	GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*models.Session, error)
}
