package bmi

import (
	"math"
	"strconv"
	"strings"

	"github.com/hapkiduki/bmi-go/internal/domain/valueobject"
)

// Validator rejects measurements outside realistic physiological
// bounds before they reach the Calculator, preventing meaningless or
// numerically degenerate results such as division by near-zero height.
//
// The Validator makes no decisions beyond accept/reject: it never
// clamps a value to the nearest bound, and it performs no logging
// (reporting a rejection is the caller's responsibility).
//
// Example usage:
//
//	v := bmi.NewValidator(bmi.DefaultThresholds())
//	m, err := v.Validate(170, 70)
type Validator struct {
	thresholds Thresholds
}

// NewValidator creates a Validator with the given thresholds.
//
// Parameters:
//   - thresholds: bounds configuration
//
// Returns:
//   - *Validator: the configured validator
func NewValidator(thresholds Thresholds) *Validator {
	return &Validator{thresholds: thresholds}
}

// Validate checks both inputs against the configured bounds and, on
// success, constructs the validated Measurement.
//
// Height is checked before weight, so when both inputs are invalid the
// returned error refers to height.
//
// Parameters:
//   - heightCm: height in centimeters
//   - weightKg: weight in kilograms
//
// Returns:
//   - valueobject.Measurement: the validated measurement
//   - error: *InvalidInputError naming the field and violated rule
func (v *Validator) Validate(heightCm, weightKg float64) (valueobject.Measurement, error) {
	if err := v.checkBounds(FieldHeight, heightCm, v.thresholds.HeightMinCm, v.thresholds.HeightMaxCm); err != nil {
		return valueobject.Measurement{}, err
	}
	if err := v.checkBounds(FieldWeight, weightKg, v.thresholds.WeightMinKg, v.thresholds.WeightMaxKg); err != nil {
		return valueobject.Measurement{}, err
	}
	return valueobject.NewMeasurement(heightCm, weightKg), nil
}

// Parse converts raw form text into a validated Measurement. A value
// that does not parse as a number surfaces as the same InvalidInput
// kind as an out-of-range value, so callers have one error channel.
//
// Parameters:
//   - heightRaw: height input as typed by the user
//   - weightRaw: weight input as typed by the user
//
// Returns:
//   - valueobject.Measurement: the validated measurement
//   - error: *InvalidInputError naming the field and violated rule
func (v *Validator) Parse(heightRaw, weightRaw string) (valueobject.Measurement, error) {
	heightCm, err := parseField(FieldHeight, heightRaw)
	if err != nil {
		return valueobject.Measurement{}, err
	}
	weightKg, err := parseField(FieldWeight, weightRaw)
	if err != nil {
		return valueobject.Measurement{}, err
	}
	return v.Validate(heightCm, weightKg)
}

// checkBounds applies the validation rules for a single field in
// order: positivity first, then the configured minimum and maximum.
func (v *Validator) checkBounds(field Field, value, min, max float64) error {
	if value <= 0 {
		return errNonPositive(field)
	}
	if value < min {
		return errBelowMinimum(field, value, min, max)
	}
	if value > max {
		return errAboveMaximum(field, value, max)
	}
	return nil
}

// parseField converts raw text to a float, mapping any parse failure
// (including NaN and infinities, which strconv accepts but the
// calculation cannot use) to a non-numeric InvalidInput.
func parseField(field Field, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errNonNumeric(field, raw)
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errNonNumeric(field, raw)
	}
	// ParseFloat accepts "NaN" and "Inf" spellings.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errNonNumeric(field, raw)
	}
	return value, nil
}
