package models

import (
	"time"
)

// Drink represents a single beverage entered by the user
type Drink struct {
	// ID is the unique identifier for the drink, stable across edits and removals
	ID string

	// VolumeOz is the beverage volume in fluid ounces
	VolumeOz float64

	// ABVPercent is the Alcohol By Volume percentage of the beverage
	ABVPercent float64

	// AddedAt is when the drink was entered
	AddedAt time.Time
}

// AlcoholOz returns the fluid ounces of pure ethanol in the drink
func (d *Drink) AlcoholOz() float64 {
	return d.VolumeOz * (d.ABVPercent / 100)
}
