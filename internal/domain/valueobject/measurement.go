// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
// They encapsulate validation logic and ensure data integrity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Self-validation: They validate their own data upon creation.
//   - Side-effect free: Methods returns new instances rather than modifying state
package valueobject

import "fmt"

// Measurement represents a validated (height, weight) input pair.
// Height is in centimeters and weight in kilograms, matching the units
// the end user types into the form.
//
// A Measurement is only constructed by the validator after its bounds
// check has passed; code holding a Measurement may assume both fields
// are positive and inside the configured physiological range.
//
// Example usage:
//
//	m := valueobject.NewMeasurement(170, 70)
//	meters := m.HeightMeters() // 1.70
type Measurement struct {
	// HeightCm is the height in centimeters.
	HeightCm float64 `json:"height_cm"`

	// WeightKg is the weight in kilograms.
	WeightKg float64 `json:"weight_kg"`
}

// NewMeasurement creates a new Measurement value object.
//
// Parameters:
//   - heightCm: Height in centimeters
//   - weightKg: Weight in kilograms
//
// Returns:
//   - Measurement: the created Measurement value object
func NewMeasurement(heightCm, weightKg float64) Measurement {
	return Measurement{
		HeightCm: heightCm,
		WeightKg: weightKg,
	}
}

// HeightMeters converts the stored height to meters for the BMI formula.
//
// Returns:
//   - float64: height in meters
func (m Measurement) HeightMeters() float64 {
	return m.HeightCm / 100
}

// Equals checks if two Measurements carry the same height and weight.
//
// Parameters:
//   - other: the Measurement to compare
//
// Returns:
//   - bool: true if both Measurements are equal
func (m Measurement) Equals(other Measurement) bool {
	return m.HeightCm == other.HeightCm && m.WeightKg == other.WeightKg
}

// IsZero checks if the Measurement is the zero value.
//
// Returns:
//   - bool: true if both fields are zero
func (m Measurement) IsZero() bool {
	return m.HeightCm == 0 && m.WeightKg == 0
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted measurement (e.g., "170.0 cm / 70.0 kg")
func (m Measurement) String() string {
	return fmt.Sprintf("%.1f cm / %.1f kg", m.HeightCm, m.WeightKg)
}
