package models

import (
	"time"
)

// Session represents one user's drinking session
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// Profile holds the body parameters supplied for this session
	Profile BodyProfile

	// Food is the food intake category for this session
	Food FoodIntake

	// FirstDrinkOffsetHours is the time already elapsed since the first
	// drink when monitoring starts
	FirstDrinkOffsetHours float64

	// Drinks is the ordered list of entered drinks; order is insertion
	// order and only matters for display
	Drinks []*Drink

	// Monitoring indicates whether live monitoring is active
	Monitoring bool

	// MonitoringStartedAt is when monitoring started.
	// Non-nil exactly when Monitoring is true.
	MonitoringStartedAt *time.Time

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}

// TotalAlcoholOz returns the fluid ounces of pure ethanol across all
// drinks. Derived, never stored; the sum is order-independent.
func (s *Session) TotalAlcoholOz() float64 {
	var total float64
	for _, d := range s.Drinks {
		total += d.AlcoholOz()
	}
	return total
}

// FindDrink returns the drink with the given ID, or nil
func (s *Session) FindDrink(drinkID string) *Drink {
	for _, d := range s.Drinks {
		if d.ID == drinkID {
			return d
		}
	}
	return nil
}

// Clone returns a deep copy of the session so callers can read it
// without holding any lock
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	clone := *s

	clone.Drinks = make([]*Drink, len(s.Drinks))
	for i, d := range s.Drinks {
		drink := *d
		clone.Drinks[i] = &drink
	}

	if s.MonitoringStartedAt != nil {
		startedAt := *s.MonitoringStartedAt
		clone.MonitoringStartedAt = &startedAt
	}

	return &clone
}
