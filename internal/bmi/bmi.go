// Package bmi computes Body Mass Index from imperial measurements.
package bmi

import "math"

const (
	// ImperialFactor scales lb/in² to kg/m².
	ImperialFactor = 703

	// Precision is the number of decimal places a BMI is rounded to.
	Precision = 2
)

// Calculate returns the BMI for a height in inches and a weight in pounds,
// rounded to Precision decimal places.
//
// Inputs are not validated. A zero height yields +Inf (NaN when the weight
// is also zero) and NaN inputs yield NaN.
func Calculate(height, weight float64) float64 {
	value := (weight / (height * height)) * ImperialFactor
	return Round(value, Precision)
}

// Round rounds value to the given number of decimal places, with halves
// rounded toward positive infinity. NaN and infinities are returned as is.
func Round(value float64, places int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	scale := math.Pow(10, float64(places))
	scaled := value * scale
	// compare the fraction instead of adding 0.5, which can itself round
	rounded := math.Floor(scaled)
	if scaled-rounded >= 0.5 {
		rounded++
	}
	return rounded / scale
}
