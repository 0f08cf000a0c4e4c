package monitor

// MonitorError is a custom error type for monitor-related errors
type MonitorError string

// Error implements the error interface
func (e MonitorError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         MonitorError = "config cannot be nil"
	ErrNilSessionService MonitorError = "session service cannot be nil"
	ErrNilClock          MonitorError = "clock cannot be nil"
	ErrNilSink           MonitorError = "sink cannot be nil"
)
