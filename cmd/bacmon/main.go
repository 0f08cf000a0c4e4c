package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/KirkDiggler/bacmon/internal/common/clock"
	"github.com/KirkDiggler/bacmon/internal/common/uuid"
	"github.com/KirkDiggler/bacmon/internal/handlers/console"
	"github.com/KirkDiggler/bacmon/internal/models"
	sessionRepo "github.com/KirkDiggler/bacmon/internal/repositories/session"
	monitorService "github.com/KirkDiggler/bacmon/internal/services/monitor"
	sessionService "github.com/KirkDiggler/bacmon/internal/services/session"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; variables already set win
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	systemClock := &clock.DefaultClock{}

	// Initialize the session service over the in-memory repository
	sessionSvc, err := sessionService.New(&sessionService.Config{
		Repository:    sessionRepo.NewMemory(),
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	// The display is shared: the monitor publishes readings into it and
	// the console writes command output through it
	display := console.NewDisplay(os.Stdout)

	// Initialize the monitor service
	monitorSvc, err := monitorService.New(&monitorService.Config{
		SessionService: sessionSvc,
		Clock:          systemClock,
		Sink:           display,
		Interval:       envDuration("BACMON_REFRESH_INTERVAL", monitorService.DefaultInterval),
	})
	if err != nil {
		log.Fatalf("Failed to create monitor service: %v", err)
	}

	// Initialize the console handler
	handler, err := console.New(&console.Config{
		SessionService: sessionSvc,
		MonitorService: monitorSvc,
		In:             os.Stdin,
		Display:        display,
	})
	if err != nil {
		log.Fatalf("Failed to create console handler: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Install the starting session, seeded from the environment
	if _, err := sessionSvc.CreateSession(ctx, &sessionService.CreateSessionInput{
		Gender:                envGender("BACMON_GENDER"),
		WeightLbs:             envWeight("BACMON_WEIGHT_LBS"),
		Food:                  envFood("BACMON_FOOD"),
		FirstDrinkOffsetHours: envOffset("BACMON_OFFSET_HOURS"),
	}); err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	// Run the console until quit, EOF, or a shutdown signal
	done := make(chan error, 1)
	go func() {
		done <- handler.Run(ctx)
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-done:
		if err != nil {
			log.Fatalf("Console exited with error: %v", err)
		}
	case <-sc:
		// Halt any active reading loop before exiting
		if _, err := monitorSvc.StopMonitoring(ctx, &monitorService.StopMonitoringInput{}); err != nil {
			log.Printf("Error stopping monitoring: %v", err)
		}
	}

	log.Println("BAC estimator has been shut down")
}

// envDuration gets a duration environment variable or returns the fallback
func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		log.Printf("Invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return value
}

// envGender gets the seed gender, or empty for the service default
func envGender(key string) models.Gender {
	raw := os.Getenv(key)
	if raw == "" {
		return ""
	}

	gender, ok := models.ParseGender(raw)
	if !ok {
		log.Printf("Invalid %s %q, using default", key, raw)
		return ""
	}
	return gender
}

// envFood gets the seed food intake, or empty for the service default
func envFood(key string) models.FoodIntake {
	raw := os.Getenv(key)
	if raw == "" {
		return ""
	}

	food, ok := models.ParseFoodIntake(raw)
	if !ok {
		log.Printf("Invalid %s %q, using default", key, raw)
		return ""
	}
	return food
}

// envWeight gets the seed body weight, or zero for the service default
func envWeight(key string) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < sessionService.MinWeightLbs || value > sessionService.MaxWeightLbs {
		log.Printf("Invalid %s %q, using default", key, raw)
		return 0
	}
	return value
}

// envOffset gets the seed first-drink offset, or zero
func envOffset(key string) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 || value > sessionService.MaxOffsetHours {
		log.Printf("Invalid %s %q, using default", key, raw)
		return 0
	}
	return value
}
