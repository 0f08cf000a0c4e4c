package monitor

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/bacmon/internal/bac"
	"github.com/KirkDiggler/bacmon/internal/common/clock"
	"github.com/KirkDiggler/bacmon/internal/models"
	sessionService "github.com/KirkDiggler/bacmon/internal/services/session"
)

// service implements the Service interface
type service struct {
	sessions sessionService.Service
	clock    clock.Clock
	sink     Sink
	interval time.Duration

	// Guards the loop handle so start/stop from different goroutines
	// cannot race
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a new monitor service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Sink == nil {
		return nil, ErrNilSink
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &service{
		sessions: cfg.SessionService,
		clock:    cfg.Clock,
		sink:     cfg.Sink,
		interval: interval,
	}, nil
}

// StartMonitoring begins the periodic reading loop. The session service
// owns the validation: starting with no alcohol recorded or while
// already monitoring fails there.
func (s *service) StartMonitoring(ctx context.Context, input *StartMonitoringInput) (*StartMonitoringOutput, error) {
	output, err := s.sessions.StartMonitoring(ctx, &sessionService.StartMonitoringInput{})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel == nil {
		// The loop outlives the command that started it
		loopCtx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		s.cancel = cancel
		s.done = done

		go s.run(loopCtx, done)
	}

	return &StartMonitoringOutput{
		Session: output.Session,
	}, nil
}

// StopMonitoring halts the reading loop and clears the session state.
// Stopping while idle is not an error.
func (s *service) StopMonitoring(ctx context.Context, input *StopMonitoringInput) (*StopMonitoringOutput, error) {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		// Wait for the loop to finish so no reading lands after we return
		<-done
	}

	output, err := s.sessions.StopMonitoring(ctx, &sessionService.StopMonitoringInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to stop monitoring: %w", err)
	}

	return &StopMonitoringOutput{
		WasActive: output.WasActive,
	}, nil
}

// Snapshot computes a single reading without starting the loop. While
// idle the estimate is anchored at the first-drink offset; while
// monitoring it reflects live elapsed time.
func (s *service) Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error) {
	output, err := s.sessions.GetSession(ctx, &sessionService.GetSessionInput{})
	if err != nil {
		return nil, err
	}

	session := output.Session

	return &SnapshotOutput{
		Reading:    s.computeReading(session, s.clock.Now()),
		HasDrinks:  len(session.Drinks) > 0,
		HasAlcohol: session.TotalAlcoholOz() > 0,
	}, nil
}

// run publishes readings until the context is cancelled or the session
// stops being monitorable
func (s *service) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	// First reading lands immediately, not one interval in
	if !s.publishReading(ctx) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if !s.publishReading(ctx) {
				return
			}
		}
	}
}

// publishReading computes and publishes one reading, reporting whether
// the loop should keep going. Sink failures are logged and skipped; a
// session that is gone or no longer monitoring ends the loop.
func (s *service) publishReading(ctx context.Context) bool {
	output, err := s.sessions.GetSession(ctx, &sessionService.GetSessionInput{})
	if err != nil {
		log.Printf("monitor: failed to load session: %v", err)
		return false
	}

	session := output.Session
	if !session.Monitoring || session.MonitoringStartedAt == nil {
		return false
	}

	reading := s.computeReading(session, s.clock.Now())

	if err := s.sink.Publish(ctx, reading); err != nil {
		log.Printf("monitor: failed to publish reading: %v", err)
	}

	return true
}

// computeReading runs the estimate for the session at the given instant
func (s *service) computeReading(session *models.Session, now time.Time) *models.Reading {
	elapsed := session.FirstDrinkOffsetHours
	if session.Monitoring && session.MonitoringStartedAt != nil {
		elapsed += now.Sub(*session.MonitoringStartedAt).Hours()
	}

	value := bac.Estimate(
		session.TotalAlcoholOz(),
		session.Profile.WeightLbs,
		session.Profile.Gender.RValue(),
		session.Food.Factor(),
		elapsed,
	)

	hours, minutes, seconds := splitElapsed(elapsed)

	return &models.Reading{
		BAC:          value,
		ElapsedHours: elapsed,
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Status:       bac.Classify(value),
		Monitoring:   session.Monitoring,
		At:           now,
	}
}

// splitElapsed breaks fractional hours into display components
func splitElapsed(elapsedHours float64) (hours, minutes, seconds int) {
	hours = int(elapsedHours)
	minutes = int(elapsedHours*60) % 60
	seconds = int(elapsedHours*3600) % 60
	return hours, minutes, seconds
}
