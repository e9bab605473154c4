package bmi

import "fmt"

// Thresholds is the immutable set of numeric bounds and category
// cutoffs governing validation and classification. It is loaded once
// per process by the configuration layer and injected into the
// Validator and Calculator; the calculation logic itself contains no
// numeric literals for any of these values.
type Thresholds struct {
	// HeightMinCm is the lower admissible bound for height input.
	HeightMinCm float64

	// HeightMaxCm is the upper admissible bound for height input.
	HeightMaxCm float64

	// WeightMinKg is the lower admissible bound for weight input.
	WeightMinKg float64

	// WeightMaxKg is the upper admissible bound for weight input.
	WeightMaxKg float64

	// Underweight is the BMI value below which a result is Underweight.
	Underweight float64

	// Normal is the BMI value below which a result is Normal weight.
	Normal float64

	// Overweight is the BMI value below which a result is Overweight.
	// At or above it the result is Obese.
	Overweight float64

	// GaugeMax is the upper end of the gauge scale.
	GaugeMax float64
}

// DefaultThresholds returns the standard bounds and WHO category
// cutoffs used when no configuration overrides them.
//
// Returns:
//   - Thresholds: default thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		HeightMinCm: 100,
		HeightMaxCm: 300,
		WeightMinKg: 10,
		WeightMaxKg: 500,
		Underweight: 18.5,
		Normal:      25.0,
		Overweight:  30.0,
		GaugeMax:    40,
	}
}

// Validate checks that the thresholds themselves are coherent: bounds
// are positive and ordered, and the category cutoffs are strictly
// increasing. Misconfigured thresholds are a deployment error, not a
// user input error, so this returns a plain error rather than
// InvalidInput.
//
// Returns:
//   - error: description of the first inconsistency found, or nil
func (t Thresholds) Validate() error {
	if t.HeightMinCm <= 0 || t.WeightMinKg <= 0 {
		return fmt.Errorf("input bounds must be positive: height_min=%.1f weight_min=%.1f",
			t.HeightMinCm, t.WeightMinKg)
	}
	if t.HeightMinCm >= t.HeightMaxCm {
		return fmt.Errorf("height bounds out of order: min=%.1f max=%.1f", t.HeightMinCm, t.HeightMaxCm)
	}
	if t.WeightMinKg >= t.WeightMaxKg {
		return fmt.Errorf("weight bounds out of order: min=%.1f max=%.1f", t.WeightMinKg, t.WeightMaxKg)
	}
	if !(0 < t.Underweight && t.Underweight < t.Normal && t.Normal < t.Overweight) {
		return fmt.Errorf("category cutoffs must be strictly increasing: %.1f, %.1f, %.1f",
			t.Underweight, t.Normal, t.Overweight)
	}
	if t.GaugeMax <= t.Overweight {
		return fmt.Errorf("gauge max %.1f must exceed the obesity cutoff %.1f", t.GaugeMax, t.Overweight)
	}
	return nil
}
