package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/bacmon/internal/models"
	"github.com/KirkDiggler/bacmon/internal/services/monitor"
	"github.com/KirkDiggler/bacmon/internal/services/session"
)

// Console is the interactive boundary. It translates typed commands
// into service calls; live readings reach the shared display straight
// from the monitor.
type Console struct {
	sessionService session.Service
	monitorService monitor.Service
	in             io.Reader
	display        *Display
}

// Config holds the configuration for the console
type Config struct {
	// SessionService owns session state and drink edits
	SessionService session.Service

	// MonitorService owns the reading loop and snapshots
	MonitorService monitor.Service

	// In supplies typed commands
	In io.Reader

	// Display receives rendered output. Hand the same display to the
	// monitor as its Sink so readings and prompts share one writer.
	Display *Display
}

// New creates a new console handler
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.MonitorService == nil {
		return nil, errors.New("monitor service cannot be nil")
	}

	if cfg.In == nil {
		return nil, errors.New("input reader cannot be nil")
	}

	if cfg.Display == nil {
		return nil, errors.New("display cannot be nil")
	}

	return &Console{
		sessionService: cfg.SessionService,
		monitorService: cfg.MonitorService,
		in:             cfg.In,
		display:        cfg.Display,
	}, nil
}

// Run reads commands until EOF or quit, then halts monitoring
func (c *Console) Run(ctx context.Context) error {
	c.display.write(renderWelcome())

	scanner := bufio.NewScanner(c.in)
	c.display.writePrompt()
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			c.display.writePrompt()
			continue
		}

		command, args := fields[0], fields[1:]
		if command == "quit" || command == "exit" {
			break
		}

		if err := c.dispatch(ctx, command, args); err != nil {
			c.display.write(dangerStyle.Render("Error: " + err.Error()))
		}
		c.display.writePrompt()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}

	// Make sure the reading loop is gone before handing control back
	if _, err := c.monitorService.StopMonitoring(ctx, &monitor.StopMonitoringInput{}); err != nil {
		return fmt.Errorf("failed to halt the reading loop: %w", err)
	}

	c.display.write("Goodbye. Drink responsibly!")
	return nil
}

// dispatch routes one command line to its handler
func (c *Console) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "help":
		c.display.write(renderHelp())
		return nil
	case "add":
		return c.handleAdd(ctx, args)
	case "drinks":
		return c.handleDrinks(ctx)
	case "set":
		return c.handleSet(ctx, args)
	case "rm":
		return c.handleRemove(ctx, args)
	case "profile":
		return c.handleProfile(ctx, args)
	case "offset":
		return c.handleOffset(ctx, args)
	case "start":
		return c.handleStart(ctx)
	case "stop":
		return c.handleStop(ctx)
	case "status":
		return c.handleStatus(ctx)
	case "reset":
		return c.handleReset(ctx)
	default:
		c.display.write(fmt.Sprintf("Unknown command %q. Type 'help' to list commands.", command))
		return nil
	}
}

// handleAdd appends a drink, optionally setting its values in one step
func (c *Console) handleAdd(ctx context.Context, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return errors.New("usage: add [volume_oz abv_percent]")
	}

	var volume, abv *float64
	if len(args) == 2 {
		v, err := parseFloatArg("volume", args[0])
		if err != nil {
			return err
		}
		a, err := parseFloatArg("abv", args[1])
		if err != nil {
			return err
		}
		volume, abv = &v, &a
	}

	added, err := c.sessionService.AddDrink(ctx, &session.AddDrinkInput{})
	if err != nil {
		return err
	}

	drink := added.Drink
	if volume != nil {
		updated, err := c.sessionService.UpdateDrink(ctx, &session.UpdateDrinkInput{
			DrinkID:    drink.ID,
			VolumeOz:   volume,
			ABVPercent: abv,
		})
		if err != nil {
			return err
		}
		drink = updated.Drink
	}

	c.display.write(fmt.Sprintf("Added drink [%s]: %.1f oz at %.1f%% abv.", shortID(drink.ID), drink.VolumeOz, drink.ABVPercent))
	return nil
}

// handleDrinks lists the recorded drinks
func (c *Console) handleDrinks(ctx context.Context) error {
	current, err := c.sessionService.GetSession(ctx, &session.GetSessionInput{})
	if err != nil {
		return err
	}

	c.display.write(renderDrinkList(current.Session))
	return nil
}

// handleSet updates a drink's volume and alcohol percentage
func (c *Console) handleSet(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: set <drink_id> <volume_oz|-> <abv_percent|->")
	}

	input := &session.UpdateDrinkInput{}
	if args[1] != "-" {
		volume, err := parseFloatArg("volume", args[1])
		if err != nil {
			return err
		}
		input.VolumeOz = &volume
	}
	if args[2] != "-" {
		abv, err := parseFloatArg("abv", args[2])
		if err != nil {
			return err
		}
		input.ABVPercent = &abv
	}

	if input.VolumeOz == nil && input.ABVPercent == nil {
		return errors.New("nothing to update")
	}

	drinkID, err := c.resolveDrinkID(ctx, args[0])
	if err != nil {
		return err
	}
	input.DrinkID = drinkID

	updated, err := c.sessionService.UpdateDrink(ctx, input)
	if err != nil {
		return err
	}

	c.display.write(fmt.Sprintf("Updated drink [%s]: %.1f oz at %.1f%% abv.", shortID(updated.Drink.ID), updated.Drink.VolumeOz, updated.Drink.ABVPercent))
	return nil
}

// handleRemove removes a drink
func (c *Console) handleRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: rm <drink_id>")
	}

	drinkID, err := c.resolveDrinkID(ctx, args[0])
	if err != nil {
		return err
	}

	removed, err := c.sessionService.RemoveDrink(ctx, &session.RemoveDrinkInput{
		DrinkID: drinkID,
	})
	if err != nil {
		return err
	}

	if !removed.Removed {
		c.display.write(fmt.Sprintf("No drink matches %q.", args[0]))
		return nil
	}

	c.display.write("Drink removed.")
	return nil
}

// handleProfile shows the profile, or updates it when values are given
func (c *Console) handleProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		current, err := c.sessionService.GetSession(ctx, &session.GetSessionInput{})
		if err != nil {
			return err
		}

		c.display.write(renderProfile(current.Session))
		return nil
	}

	if len(args) != 3 {
		return errors.New("usage: profile <male|female> <weight_lbs> <empty|light|heavy>")
	}

	weight, err := parseFloatArg("weight", args[1])
	if err != nil {
		return err
	}

	// The service owns validation; unknown values pass through as-is
	gender, _ := models.ParseGender(args[0])
	food, _ := models.ParseFoodIntake(args[2])

	updated, err := c.sessionService.SetProfile(ctx, &session.SetProfileInput{
		Gender:    gender,
		WeightLbs: weight,
		Food:      food,
	})
	if err != nil {
		return err
	}

	c.display.write(renderProfile(updated.Session))
	return nil
}

// handleOffset records how long drinking had been going on already
func (c *Console) handleOffset(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: offset <hours>")
	}

	hours, err := parseFloatArg("offset", args[0])
	if err != nil {
		return err
	}

	updated, err := c.sessionService.SetFirstDrinkOffset(ctx, &session.SetFirstDrinkOffsetInput{
		Hours: hours,
	})
	if err != nil {
		return err
	}

	c.display.write(fmt.Sprintf("First drink offset set to %.2f hours.", updated.Session.FirstDrinkOffsetHours))
	return nil
}

// handleStart begins live monitoring
func (c *Console) handleStart(ctx context.Context) error {
	_, err := c.monitorService.StartMonitoring(ctx, &monitor.StartMonitoringInput{})
	if err == nil {
		c.display.write("Monitoring started. Live readings will appear below; type 'stop' to halt.")
		return nil
	}

	if errors.Is(err, session.ErrNoAlcoholRecorded) {
		return c.writeIdlePrompt(ctx)
	}
	if errors.Is(err, session.ErrMonitoringActive) {
		c.display.write("Monitoring is already active.")
		return nil
	}

	return err
}

// handleStop halts live monitoring
func (c *Console) handleStop(ctx context.Context) error {
	stopped, err := c.monitorService.StopMonitoring(ctx, &monitor.StopMonitoringInput{})
	if err != nil {
		return err
	}

	if !stopped.WasActive {
		c.display.write("Monitoring is not active.")
		return nil
	}

	c.display.write("Monitoring stopped.")
	return nil
}

// handleStatus shows a one-shot estimate
func (c *Console) handleStatus(ctx context.Context) error {
	snapshot, err := c.monitorService.Snapshot(ctx, &monitor.SnapshotInput{})
	if err != nil {
		return err
	}

	if !snapshot.HasDrinks || !snapshot.HasAlcohol {
		c.display.write(renderIdlePrompt(snapshot))
		return nil
	}

	c.display.write(renderReading(snapshot.Reading))
	return nil
}

// handleReset discards the session and installs a fresh default one
func (c *Console) handleReset(ctx context.Context) error {
	if _, err := c.monitorService.StopMonitoring(ctx, &monitor.StopMonitoringInput{}); err != nil {
		return err
	}

	created, err := c.sessionService.CreateSession(ctx, &session.CreateSessionInput{})
	if err != nil {
		return err
	}

	c.display.write("Session reset.\n" + renderProfile(created.Session))
	return nil
}

// writeIdlePrompt explains which input is missing before monitoring can start
func (c *Console) writeIdlePrompt(ctx context.Context) error {
	snapshot, err := c.monitorService.Snapshot(ctx, &monitor.SnapshotInput{})
	if err != nil {
		return err
	}

	c.display.write(renderIdlePrompt(snapshot))
	return nil
}

// resolveDrinkID expands a typed ID prefix to the full drink ID so
// drinks can be addressed by the short form the listing shows
func (c *Console) resolveDrinkID(ctx context.Context, prefix string) (string, error) {
	current, err := c.sessionService.GetSession(ctx, &session.GetSessionInput{})
	if err != nil {
		return "", err
	}

	var match string
	for _, drink := range current.Session.Drinks {
		if !strings.HasPrefix(drink.ID, prefix) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("drink id %q is ambiguous", prefix)
		}
		match = drink.ID
	}

	if match == "" {
		// Let the service decide how an unknown ID is handled
		return prefix, nil
	}

	return match, nil
}

func parseFloatArg(name, raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return value, nil
}
