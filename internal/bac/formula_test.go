package bac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate_NoAlcohol(t *testing.T) {
	// No alcohol means no BAC regardless of the other inputs
	cases := []struct {
		name    string
		alcohol float64
		elapsed float64
	}{
		{name: "zero alcohol, zero elapsed", alcohol: 0, elapsed: 0},
		{name: "zero alcohol, hours later", alcohol: 0, elapsed: 12},
		{name: "negative alcohol is treated as none", alcohol: -1, elapsed: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Estimate(tc.alcohol, 160, 0.73, 1.0, tc.elapsed)
			assert.Zero(t, got)
		})
	}
}

func TestEstimate_PeakAtTimeZero(t *testing.T) {
	// One ounce of ethanol for a 160 lb male on an empty stomach
	got := Estimate(1.0, 160, 0.73, 1.0, 0)

	want := 1.0 * WidmarkFactor / (160 * 0.73)
	require.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 0.044, got, 0.001)
}

func TestEstimate_MetabolismDecay(t *testing.T) {
	peak := Estimate(1.0, 160, 0.73, 1.0, 0)
	afterOneHour := Estimate(1.0, 160, 0.73, 1.0, 1)

	require.InDelta(t, peak-MetabolismRatePerHour, afterOneHour, 1e-12)
}

func TestEstimate_ClampsAtZero(t *testing.T) {
	// Three hours of metabolism overtakes a ~0.044 peak
	got := Estimate(1.0, 160, 0.73, 1.0, 3)

	assert.Zero(t, got)
}

func TestEstimate_FoodFactorScalesPeak(t *testing.T) {
	empty := Estimate(2.0, 160, 0.73, 1.0, 0)
	light := Estimate(2.0, 160, 0.73, 0.8, 0)
	heavy := Estimate(2.0, 160, 0.73, 0.5, 0)

	require.InDelta(t, empty*0.8, light, 1e-12)
	require.InDelta(t, empty*0.5, heavy, 1e-12)
}

func TestEstimate_MonotonicInElapsedHours(t *testing.T) {
	// BAC never rises as time passes, and never goes negative
	prev := Estimate(2.0, 160, 0.73, 1.0, 0)
	for hours := 0.5; hours <= 24; hours += 0.5 {
		got := Estimate(2.0, 160, 0.73, 1.0, hours)
		assert.LessOrEqual(t, got, prev, "elapsed %.1fh", hours)
		assert.GreaterOrEqual(t, got, 0.0, "elapsed %.1fh", hours)
		prev = got
	}
}

func TestEstimate_MonotonicInTotalAlcohol(t *testing.T) {
	prev := Estimate(0.5, 160, 0.73, 1.0, 1)
	for oz := 1.0; oz <= 8; oz += 0.5 {
		got := Estimate(oz, 160, 0.73, 1.0, 1)
		assert.Greater(t, got, prev, "alcohol %.1foz", oz)
		prev = got
	}
}

func TestEstimate_DecreasingInWeight(t *testing.T) {
	prev := Estimate(2.0, 50, 0.73, 1.0, 0)
	for weight := 100.0; weight <= 500; weight += 50 {
		got := Estimate(2.0, weight, 0.73, 1.0, 0)
		assert.Less(t, got, prev, "weight %.0flbs", weight)
		prev = got
	}
}

func TestEstimate_GenderRatio(t *testing.T) {
	// The lower female r value distributes the same alcohol over less
	// body water, giving a higher estimate
	male := Estimate(2.0, 160, 0.73, 1.0, 0)
	female := Estimate(2.0, 160, 0.66, 1.0, 0)

	assert.Greater(t, female, male)
}
