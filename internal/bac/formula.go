// Package bac implements the BAC estimation formula and the status
// classifier. Both are pure functions; session bookkeeping and tick
// scheduling live in the services that call them.
package bac

// Formula constants for the simplified Widmark estimate
const (
	// WidmarkFactor converts alcohol ounces over body weight in pounds
	// into a percentage BAC
	WidmarkFactor = 5.14

	// MetabolismRatePerHour is the average BAC reduction per hour
	MetabolismRatePerHour = 0.015
)

// Estimate calculates the current BAC using a simplified Widmark
// formula with a linear metabolism decay term.
//
// totalAlcoholOz is the fluid ounces of pure ethanol consumed,
// weightLbs the body weight in pounds, rValue the gender-based
// distribution ratio and foodFactor the peak multiplier for food
// intake. elapsedHours is the total time since the first drink.
//
// The caller guarantees weightLbs > 0 and rValue > 0. No alcohol means
// no BAC regardless of elapsed time, and the result is clamped at 0.0
// because metabolism cannot drive BAC negative. The value is returned
// unrounded.
func Estimate(totalAlcoholOz, weightLbs, rValue, foodFactor, elapsedHours float64) float64 {
	if totalAlcoholOz <= 0 {
		return 0.0
	}

	peak := totalAlcoholOz * WidmarkFactor / (weightLbs * rValue) * foodFactor

	current := peak - MetabolismRatePerHour*elapsedHours
	if current < 0 {
		return 0.0
	}

	return current
}
