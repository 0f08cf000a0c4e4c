package bac

import (
	"github.com/KirkDiggler/bacmon/internal/models"
)

// Classification thresholds, evaluated highest-first
const (
	// LegalLimitBAC is the legal driving limit
	LegalLimitBAC = 0.08

	// ImpairedBAC is where impairment warnings begin
	ImpairedBAC = 0.05
)

// Classify maps a BAC value to its qualitative status. The thresholds
// are strictly ordered so every non-negative value lands in exactly one
// bucket; 0.08 and 0.05 belong to the higher-severity bucket.
func Classify(bac float64) models.Status {
	switch {
	case bac >= LegalLimitBAC:
		return models.Status{
			Severity: models.SeverityDanger,
			Message:  "Legal Limit Exceeded - DO NOT DRIVE!",
			Icon:     "🚨",
		}
	case bac >= ImpairedBAC:
		return models.Status{
			Severity: models.SeverityWarning,
			Message:  "Impaired - Avoid risky activities!",
			Icon:     "⚠️",
		}
	case bac > 0.0:
		return models.Status{
			Severity: models.SeverityInfo,
			Message:  "Some effects present - Drink responsibly.",
			Icon:     "✅",
		}
	default:
		return models.Status{
			Severity: models.SeveritySuccess,
			Message:  "Sober - Enjoy responsibly!",
			Icon:     "🧘",
		}
	}
}
