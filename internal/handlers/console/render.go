package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/bacmon/internal/models"
	"github.com/KirkDiggler/bacmon/internal/services/monitor"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

const (
	disclaimer = "This tool provides a real-time estimation of Blood Alcohol Content (BAC) based on common formulas. It is not a substitute for a breathalyzer or medical advice. Individual results can vary significantly due to metabolism, hydration, health conditions, and more. Always drink responsibly and never drink and drive."

	educationalNote = "This calculator is for educational purposes only and should not be used to determine fitness to drive or operate machinery. The real-time updates are still estimations."
)

// Gauge presentation limits. 0.20% is a very high BAC; the gauge caps
// there so the bar stays meaningful, the estimate itself is not capped.
const (
	gaugeMaxBAC = 0.20
	gaugeWidth  = 24
)

// styleFor maps a status severity to its display style
func styleFor(severity models.StatusSeverity) lipgloss.Style {
	switch severity {
	case models.SeverityDanger:
		return dangerStyle
	case models.SeverityWarning:
		return warningStyle
	case models.SeverityInfo:
		return infoStyle
	default:
		return successStyle
	}
}

// renderWelcome renders the startup banner and disclaimer
func renderWelcome() string {
	return strings.Join([]string{
		titleStyle.Render("🥂 Dynamic BAC Estimator"),
		captionStyle.Render(disclaimer),
		"Type 'help' to list commands.",
	}, "\n")
}

// renderHelp renders the command reference
func renderHelp() string {
	return strings.Join([]string{
		"Commands:",
		"  add [volume_oz abv_percent]    add a drink; zero-valued unless values are given",
		"  drinks                         list recorded drinks",
		"  set <id> <volume|-> <abv|->    update a drink; '-' keeps the current value",
		"  rm <id>                        remove a drink",
		"  profile [<male|female> <weight_lbs> <empty|light|heavy>]",
		"  offset <hours>                 hours of drinking before monitoring begins",
		"  start                          begin live monitoring",
		"  stop                           halt live monitoring",
		"  status                         show the current estimate",
		"  reset                          discard everything and start a fresh session",
		"  help                           show this message",
		"  quit                           exit",
		"",
		"Typical drinks: beer is 12 oz at 5%, wine is 5 oz at 12%, a shot is 1.5 oz at 40%.",
		captionStyle.Render(educationalNote),
	}, "\n")
}

// renderReading renders one computed estimate. The gauge and elapsed
// clock only appear for live readings, matching the idle display that
// shows just the initial estimate and its status.
func renderReading(reading *models.Reading) string {
	style := styleFor(reading.Status.Severity)

	label := "Initial Estimated BAC"
	if reading.Monitoring {
		label = "Current Estimated BAC"
	}

	lines := []string{
		style.Render(fmt.Sprintf("%s: %.3f%%", label, reading.BAC)),
	}

	if reading.Monitoring {
		lines = append(lines,
			captionStyle.Render(renderGauge(reading.BAC)),
			fmt.Sprintf("Total time elapsed since first drink: %dh %dm %ds", reading.Hours, reading.Minutes, reading.Seconds),
		)
	}

	lines = append(lines, style.Render(fmt.Sprintf("%s %s", reading.Status.Icon, reading.Status.Message)))

	return strings.Join(lines, "\n")
}

// renderGauge renders a textual bar scaled against gaugeMaxBAC
func renderGauge(bac float64) string {
	ratio := bac / gaugeMaxBAC
	if ratio > 1.0 {
		ratio = 1.0
	}

	filled := int(math.Round(ratio * gaugeWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)

	return fmt.Sprintf("[%s] %.3f%% of ~%.2f%% max", bar, bac, gaugeMaxBAC)
}

// renderIdlePrompt picks the hint matching which input is still missing
func renderIdlePrompt(snapshot *monitor.SnapshotOutput) string {
	if snapshot.HasDrinks {
		return warningStyle.Render("Please ensure all drinks have a valid volume and ABV to calculate BAC.")
	}
	return infoStyle.Render("Add drinks to enable BAC monitoring.")
}

// renderDrinkList renders the recorded drinks with their short IDs
func renderDrinkList(session *models.Session) string {
	if len(session.Drinks) == 0 {
		return infoStyle.Render("No drinks recorded. Use 'add' to start adding your beverages.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Drinks (%d):\n", len(session.Drinks))
	for i, drink := range session.Drinks {
		fmt.Fprintf(&b, "  %d. [%s] %.1f oz at %.1f%% abv (%.2f oz alcohol)\n", i+1, shortID(drink.ID), drink.VolumeOz, drink.ABVPercent, drink.AlcoholOz())
	}
	fmt.Fprintf(&b, "Total alcohol: %.2f oz", session.TotalAlcoholOz())

	return b.String()
}

// renderProfile renders the body parameters and monitoring state
func renderProfile(session *models.Session) string {
	state := "idle"
	if session.Monitoring {
		state = "monitoring"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Gender: %s\n", session.Profile.Gender)
	fmt.Fprintf(&b, "Weight: %.1f lbs\n", session.Profile.WeightLbs)
	fmt.Fprintf(&b, "Food intake: %s\n", session.Food)
	fmt.Fprintf(&b, "First drink offset: %.2f hours\n", session.FirstDrinkOffsetHours)
	fmt.Fprintf(&b, "State: %s", state)

	return b.String()
}

// shortID returns the leading segment of a drink ID, enough to address
// it from the console without typing the full identifier
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
