package session

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/bacmon/internal/models"
)

// ErrSessionNotFound is returned when no session has been stored yet
var ErrSessionNotFound = errors.New("session not found")

// memoryRepository implements the Repository interface with an in-process map
type memoryRepository struct {
	mu        sync.RWMutex
	sessions  map[string]*models.Session
	currentID string
}

// NewMemory creates a new in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.Session),
	}
}

// SaveSession persists a session and marks it as the current one
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy so later edits to the caller's session do not leak in
	r.sessions[input.Session.ID] = input.Session.Clone()
	r.currentID = input.Session.ID

	return nil
}

// GetCurrentSession retrieves the current session
func (r *memoryRepository) GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.currentID == "" {
		return nil, ErrSessionNotFound
	}

	session, ok := r.sessions[r.currentID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	// Hand back a copy so callers cannot mutate the stored session
	return session.Clone(), nil
}
