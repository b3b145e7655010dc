package utils

import (
	"errors"
	"math"
)

var ErrImplausibleBody = errors.New("height/weight outside plausible range")

// BMIFromProfile computes body mass index from the profile's HeightCm and
// WeightKg, rounded to one decimal like every other display value in the app.
// Zero, negative, or out-of-range measurements fail with ErrImplausibleBody
// so unfilled profiles never render a junk category.
func BMIFromProfile(heightCm, weightKg float64) (float64, error) {
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, ErrImplausibleBody
	}

	meters := heightCm / 100.0
	bmi := weightKg / (meters * meters)
	return math.Round(bmi*10) / 10, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
