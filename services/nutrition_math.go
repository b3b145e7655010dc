package services

import "math"

// Nutrients holds absolute values for some quantity of food, not per-100
// values. Calories are whole kcal; macros are grams at one decimal.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// ScaleNutrition scales a per-100-unit base profile to quantity units.
// Calories round to the nearest kcal, macros to one decimal; math.Round is
// half-away-from-zero, which on non-negative input is the half-up rule the
// rest of the app expects.
func ScaleNutrition(base Nutrients, quantity float64) (Nutrients, error) {
	if quantity <= 0 {
		return Nutrients{}, ErrInvalidQuantity
	}
	// Multiply before dividing: (0.3 * 150) / 100 lands on 0.45 exactly, while
	// 0.3 * (150 / 100) accumulates enough float error to round down to 0.4.
	return Nutrients{
		Calories: math.Round(base.Calories * quantity / 100.0),
		Protein:  round1(base.Protein * quantity / 100.0),
		Carbs:    round1(base.Carbs * quantity / 100.0),
		Fat:      round1(base.Fat * quantity / 100.0),
	}, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
