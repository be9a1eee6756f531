// Package calorie holds the pure calorie arithmetic. Every function is
// deterministic and side-effect free; preset and MET tables live in
// internal/catalog and are passed in by callers, never read here.
//
// All results round half-to-even, matching the convention the stored
// values were produced with.
package calorie

import "math"

const (
	ozToLiters     = 0.0295735 // fluid ounce → liter
	ethanolDensity = 789       // g/L
	kcalPerGram    = 7         // ethanol energy density
)

// Alcohol returns the kilocalories from alcohol in a drink of the given
// ABV percentage and volume in fluid ounces.
func Alcohol(abvPercent, volumeOz float64) int {
	liters := volumeOz * ozToLiters
	return round(liters * (abvPercent / 100) * ethanolDensity * kcalPerGram)
}

// Burned returns the kilocalories burned by exercising at the given MET
// for the given minutes at the given body weight.
func Burned(met, weightKg, minutes float64) int {
	return round(met * weightKg * (minutes / 60))
}

// EquivalentMinutes returns how many minutes of exercise at the given MET
// and body weight offset remainingCalories. Zero when there is nothing
// left to burn; the division is skipped entirely in that case.
func EquivalentMinutes(remainingCalories int, met, weightKg float64) int {
	if remainingCalories <= 0 {
		return 0
	}
	return round(float64(remainingCalories) * 60 / (met * weightKg))
}

func round(v float64) int {
	return int(math.RoundToEven(v))
}
