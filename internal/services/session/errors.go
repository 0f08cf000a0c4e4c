package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound   SessionError = "session not found"
	ErrDrinkNotFound     SessionError = "drink not found"
	ErrMonitoringActive  SessionError = "monitoring is active"
	ErrNoAlcoholRecorded SessionError = "no alcohol recorded"
	ErrInvalidGender     SessionError = "gender must be male or female"
	ErrInvalidWeight     SessionError = "weight must be between 50 and 500 lbs"
	ErrInvalidFoodIntake SessionError = "food intake must be empty_stomach, light_meal or heavy_meal"
	ErrInvalidVolume     SessionError = "volume must be between 0 and 40 oz"
	ErrInvalidABV        SessionError = "abv must be between 0 and 100 percent"
	ErrInvalidOffset     SessionError = "offset must be between 0 and 24 hours"
	ErrNilConfig         SessionError = "config cannot be nil"
	ErrNilRepository     SessionError = "repository cannot be nil"
	ErrNilClock          SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator  SessionError = "UUID generator cannot be nil"
	ErrNilInput          SessionError = "input cannot be nil"
)
