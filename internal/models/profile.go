package models

import (
	"strings"
)

// Gender selects the Widmark body-water distribution ratio
type Gender string

const (
	// GenderMale uses the male distribution ratio (r = 0.73)
	GenderMale Gender = "male"

	// GenderFemale uses the female distribution ratio (r = 0.66)
	GenderFemale Gender = "female"
)

// Widmark distribution ratios by gender
const (
	MaleRValue   = 0.73
	FemaleRValue = 0.66
)

// RValue returns the Widmark distribution ratio for the gender.
// Unknown values fall back to the male ratio.
func (g Gender) RValue() float64 {
	if g == GenderFemale {
		return FemaleRValue
	}
	return MaleRValue
}

// IsValid reports whether the gender is a known value
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// ParseGender normalizes a user-supplied gender string. The boolean
// reports whether the result is a known value.
func ParseGender(raw string) (Gender, bool) {
	gender := Gender(strings.ToLower(raw))
	return gender, gender.IsValid()
}

// FoodIntake represents how much the user has eaten
type FoodIntake string

const (
	// FoodEmptyStomach applies no absorption slowdown
	FoodEmptyStomach FoodIntake = "empty_stomach"

	// FoodLightMeal models a light meal slowing absorption
	FoodLightMeal FoodIntake = "light_meal"

	// FoodHeavyMeal models a heavy meal slowing absorption
	FoodHeavyMeal FoodIntake = "heavy_meal"
)

// Peak BAC multipliers by food intake. Food slows absorption, lowering
// the theoretical peak; it does not change the metabolism rate.
const (
	EmptyStomachFactor = 1.0
	LightMealFactor    = 0.8
	HeavyMealFactor    = 0.5
)

// Factor returns the peak BAC multiplier for the food intake.
// Unknown values fall back to an empty stomach.
func (f FoodIntake) Factor() float64 {
	switch f {
	case FoodLightMeal:
		return LightMealFactor
	case FoodHeavyMeal:
		return HeavyMealFactor
	default:
		return EmptyStomachFactor
	}
}

// IsValid reports whether the food intake is a known value
func (f FoodIntake) IsValid() bool {
	return f == FoodEmptyStomach || f == FoodLightMeal || f == FoodHeavyMeal
}

// ParseFoodIntake normalizes a user-supplied food intake string,
// accepting the short spellings used at the input boundaries. The
// boolean reports whether the result is a known value.
func ParseFoodIntake(raw string) (FoodIntake, bool) {
	switch strings.ToLower(raw) {
	case "empty", string(FoodEmptyStomach):
		return FoodEmptyStomach, true
	case "light", string(FoodLightMeal):
		return FoodLightMeal, true
	case "heavy", string(FoodHeavyMeal):
		return FoodHeavyMeal, true
	default:
		return FoodIntake(raw), false
	}
}

// BodyProfile holds the body parameters the formula needs
type BodyProfile struct {
	// Gender selects the Widmark distribution ratio
	Gender Gender

	// WeightLbs is the body weight in pounds
	WeightLbs float64
}
