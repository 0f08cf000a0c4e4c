package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/bacmon/internal/common/clock"
	"github.com/KirkDiggler/bacmon/internal/common/uuid"
	"github.com/KirkDiggler/bacmon/internal/models"
	sessionRepo "github.com/KirkDiggler/bacmon/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	repo          sessionRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		repo:          cfg.Repository,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateSession installs a fresh session, replacing the current one
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		input = &CreateSessionInput{}
	}

	gender := input.Gender
	if gender == "" {
		gender = DefaultGender
	}
	if !gender.IsValid() {
		return nil, ErrInvalidGender
	}

	weight := input.WeightLbs
	if weight == 0 {
		weight = DefaultWeightLbs
	}
	if weight < MinWeightLbs || weight > MaxWeightLbs {
		return nil, ErrInvalidWeight
	}

	food := input.Food
	if food == "" {
		food = DefaultFood
	}
	if !food.IsValid() {
		return nil, ErrInvalidFoodIntake
	}

	if input.FirstDrinkOffsetHours < 0 || input.FirstDrinkOffsetHours > MaxOffsetHours {
		return nil, ErrInvalidOffset
	}

	now := s.clock.Now()
	session := &models.Session{
		ID: s.uuidGenerator.NewUUID(),
		Profile: models.BodyProfile{
			Gender:    gender,
			WeightLbs: weight,
		},
		Food:                  food,
		FirstDrinkOffsetHours: input.FirstDrinkOffsetHours,
		Drinks:                []*models.Drink{},
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &CreateSessionOutput{Session: session}, nil
}

// GetSession retrieves the current session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	session, err := s.getCurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Session: session}, nil
}

// AddDrink appends a zero-valued drink to the current session
func (s *service) AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error) {
	session, err := s.getCurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	drink := &models.Drink{
		ID:      s.uuidGenerator.NewUUID(),
		AddedAt: now,
	}

	session.Drinks = append(session.Drinks, drink)
	session.UpdatedAt = now

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &AddDrinkOutput{Drink: drink}, nil
}

// UpdateDrink modifies the volume and alcohol content of a drink
func (s *service) UpdateDrink(ctx context.Context, input *UpdateDrinkInput) (*UpdateDrinkOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.VolumeOz != nil && (*input.VolumeOz < 0 || *input.VolumeOz > MaxVolumeOz) {
		return nil, ErrInvalidVolume
	}

	if input.ABVPercent != nil && (*input.ABVPercent < 0 || *input.ABVPercent > MaxABVPercent) {
		return nil, ErrInvalidABV
	}

	session, err := s.getCurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	drink := session.FindDrink(input.DrinkID)
	if drink == nil {
		return nil, ErrDrinkNotFound
	}

	if input.VolumeOz != nil {
		drink.VolumeOz = *input.VolumeOz
	}

	if input.ABVPercent != nil {
		drink.ABVPercent = *input.ABVPercent
	}

	session.UpdatedAt = s.clock.Now()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &UpdateDrinkOutput{Drink: drink}, nil
}

// RemoveDrink removes a drink from the current session. Removing an
// unknown ID is a harmless no-op, not a fault.
func (s *service) RemoveDrink(ctx context.Context, input *RemoveDrinkInput) (*RemoveDrinkOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.getCurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]*models.Drink, 0, len(session.Drinks))
	removed := false
	for _, drink := range session.Drinks {
		if drink.ID == input.DrinkID {
			removed = true
			continue
		}
		kept = append(kept, drink)
	}

	if !removed {
		return &RemoveDrinkOutput{Removed: false}, nil
	}

	session.Drinks = kept
	session.UpdatedAt = s.clock.Now()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &RemoveDrinkOutput{Removed: true}, nil
}

// SetProfile updates the body profile used for estimation
func (s *service) SetProfile(ctx context.Context, input *SetProfileInput) (*SetProfileOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.Gender.IsValid() {
		return nil, ErrInvalidGender
	}

	if input.WeightLbs < MinWeightLbs || input.WeightLbs > MaxWeightLbs {
		return nil, ErrInvalidWeight
	}

	if !input.Food.IsValid() {
		return nil, ErrInvalidFoodIntake
	}

	session, err := s.getCurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	// Profile changes would silently rescale the live estimate mid-run
	if session.Monitoring {
		return nil, ErrMonitoringActive
	}

	session.Profile.Gender = input.Gender
	session.Profile.WeightLbs = input.WeightLbs
	session.Food = input.Food
	session.UpdatedAt = s.clock.Now()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &SetProfileOutput{Session: session}, nil
}

// SetFirstDrinkOffset records how many hours before now drinking began
func (s *service) SetFirstDrinkOffset(ctx context.Context, input *SetFirstDrinkOffsetInput) (*SetFirstDrinkOffsetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Hours < 0 || input.Hours > MaxOffsetHours {
		return nil, ErrInvalidOffset
	}

	session, err := s.getCurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	// The offset feeds elapsed time directly; editing it mid-run would
	// make the next tick jump
	if session.Monitoring {
		return nil, ErrMonitoringActive
	}

	session.FirstDrinkOffsetHours = input.Hours
	session.UpdatedAt = s.clock.Now()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &SetFirstDrinkOffsetOutput{Session: session}, nil
}

// StartMonitoring marks the session as actively monitored
func (s *service) StartMonitoring(ctx context.Context, input *StartMonitoringInput) (*StartMonitoringOutput, error) {
	session, err := s.getCurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	if session.Monitoring {
		return nil, ErrMonitoringActive
	}

	if session.TotalAlcoholOz() <= 0 {
		return nil, ErrNoAlcoholRecorded
	}

	now := s.clock.Now()
	session.Monitoring = true
	session.MonitoringStartedAt = &now
	session.UpdatedAt = now

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &StartMonitoringOutput{Session: session}, nil
}

// StopMonitoring clears the monitoring state. Stopping an idle session
// is not an error.
func (s *service) StopMonitoring(ctx context.Context, input *StopMonitoringInput) (*StopMonitoringOutput, error) {
	session, err := s.getCurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	if !session.Monitoring {
		return &StopMonitoringOutput{
			WasActive: false,
			Session:   session,
		}, nil
	}

	session.Monitoring = false
	session.MonitoringStartedAt = nil
	session.UpdatedAt = s.clock.Now()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &StopMonitoringOutput{
		WasActive: true,
		Session:   session,
	}, nil
}

// getCurrentSession loads the current session, mapping repository
// absence to ErrSessionNotFound
func (s *service) getCurrentSession(ctx context.Context) (*models.Session, error) {
	session, err := s.repo.GetCurrentSession(ctx, &sessionRepo.GetCurrentSessionInput{})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get current session: %w", err)
	}

	return session, nil
}

func (s *service) saveSession(ctx context.Context, session *models.Session) error {
	if err := s.repo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
