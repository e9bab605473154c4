package bmi

import "github.com/hapkiduki/bmi-go/internal/domain/valueobject"

// Result is the outcome of a BMI computation. It is immutable once
// produced and carries the full-precision value; display rounding is
// the presentation layer's concern.
type Result struct {
	// Value is the computed BMI at full floating-point precision.
	Value float64 `json:"bmi_value"`

	// Category is the weight category the value falls into.
	Category valueobject.Category `json:"category"`
}

// Calculator computes the BMI value for a Measurement and classifies
// it into a weight category using the configured cutoffs.
//
// Calculation is referentially transparent: identical inputs always
// yield identical results, and the Calculator performs no I/O.
//
// Example usage:
//
//	c := bmi.NewCalculator(bmi.DefaultThresholds())
//	res, err := c.Compute(valueobject.NewMeasurement(170, 70))
//	// res.Value ≈ 24.22, res.Category = Normal weight
type Calculator struct {
	thresholds Thresholds
	validator  *Validator
}

// NewCalculator creates a Calculator with the given thresholds.
//
// Parameters:
//   - thresholds: bounds and category cutoff configuration
//
// Returns:
//   - *Calculator: the configured calculator
func NewCalculator(thresholds Thresholds) *Calculator {
	return &Calculator{
		thresholds: thresholds,
		validator:  NewValidator(thresholds),
	}
}

// Compute calculates the BMI for a Measurement and classifies it.
//
// The measurement is re-validated defensively: a caller that bypassed
// the Validator gets an InvalidInput error, never a nonsensical result
// such as a division by zero or a silently clamped value.
//
// Parameters:
//   - m: the measurement to compute from
//
// Returns:
//   - Result: the BMI value and its category
//   - error: *InvalidInputError if the measurement is out of bounds
func (c *Calculator) Compute(m valueobject.Measurement) (Result, error) {
	if _, err := c.validator.Validate(m.HeightCm, m.WeightKg); err != nil {
		return Result{}, err
	}

	heightM := m.HeightMeters()
	value := m.WeightKg / (heightM * heightM)

	return Result{
		Value:    value,
		Category: c.Classify(value),
	}, nil
}

// Classify maps a BMI value to its weight category.
//
// Boundary policy is lower-bound inclusive: each cutoff belongs to the
// category above it (18.5 is Normal, 25.0 is Overweight, 30.0 is
// Obese), and the final category has no upper bound.
//
// Parameters:
//   - value: the BMI value
//
// Returns:
//   - valueobject.Category: the matching weight category
func (c *Calculator) Classify(value float64) valueobject.Category {
	switch {
	case value < c.thresholds.Underweight:
		return valueobject.CategoryUnderweight
	case value < c.thresholds.Normal:
		return valueobject.CategoryNormal
	case value < c.thresholds.Overweight:
		return valueobject.CategoryOverweight
	default:
		return valueobject.CategoryObese
	}
}
