package dto

import (
	"fmt"
	"net/http"

	"github.com/hapkiduki/bmi-go/internal/domain/bmi"
	"github.com/hapkiduki/bmi-go/internal/domain/valueobject"
)

// CalculateRequest is the payload for a BMI computation. Both fields
// are string-typed on purpose: they carry the raw form text, and the
// fallible parse into numbers is part of the validation contract.
type CalculateRequest struct {
	// HeightCm is the height input as typed by the user.
	HeightCm string `json:"height_cm"`

	// WeightKg is the weight input as typed by the user.
	WeightKg string `json:"weight_kg"`
}

// Bind implements render.Binder. Parsing and range checks live in the
// validator, so there is nothing to do here beyond accepting the body.
func (r *CalculateRequest) Bind(_ *http.Request) error {
	return nil
}

// GaugeBand is one colored segment of the result gauge.
type GaugeBand struct {
	// From is the inclusive lower end of the band.
	From float64 `json:"from"`

	// To is the exclusive upper end of the band.
	To float64 `json:"to"`

	// Color is the band's hex color.
	Color string `json:"color"`

	// Label is the category name for the band.
	Label string `json:"label"`
}

// GaugeSpec describes the dial the client renders: scale, colored
// bands, and the needle position.
type GaugeSpec struct {
	// Max is the upper end of the gauge scale.
	Max float64 `json:"max"`

	// Value is the needle position.
	Value float64 `json:"value"`

	// Bands are the colored segments in ascending order.
	Bands []GaugeBand `json:"bands"`
}

// CalculateResponse is the outcome of a successful BMI computation,
// ready for the client to render without further lookups.
type CalculateResponse struct {
	// BMI is the computed value at full floating-point precision.
	BMI float64 `json:"bmi"`

	// BMIDisplay is the value rounded to one decimal for display.
	// Rounding happens here, in the presentation contract, never in
	// the calculator.
	BMIDisplay string `json:"bmi_display"`

	// Category is the weight category name.
	Category string `json:"category"`

	// Color is the category's hex color.
	Color string `json:"color"`

	// Emoji is the category's severity indicator.
	Emoji string `json:"emoji"`

	// Description is a short description of the category.
	Description string `json:"description"`

	// Tip is the category-specific guidance text.
	Tip string `json:"tip"`

	// Disclaimer reminds the user that BMI is a screening metric only.
	Disclaimer string `json:"disclaimer"`

	// Gauge is the dial geometry for the result visualization.
	Gauge GaugeSpec `json:"gauge"`
}

// CategoryInfo describes one row of the classification table.
type CategoryInfo struct {
	// Name is the category display name.
	Name string `json:"name"`

	// Range is the BMI range in human-readable form (e.g., "18.5 – 24.9").
	Range string `json:"range"`

	// Color is the category's hex color.
	Color string `json:"color"`

	// Description is a short description of the category.
	Description string `json:"description"`
}

// InputConfigResponse tells the client which inputs to accept and what
// to prefill, so the form mirrors the server-side bounds.
type InputConfigResponse struct {
	// HeightMinCm is the lower admissible bound for height.
	HeightMinCm float64 `json:"height_min_cm"`

	// HeightMaxCm is the upper admissible bound for height.
	HeightMaxCm float64 `json:"height_max_cm"`

	// WeightMinKg is the lower admissible bound for weight.
	WeightMinKg float64 `json:"weight_min_kg"`

	// WeightMaxKg is the upper admissible bound for weight.
	WeightMaxKg float64 `json:"weight_max_kg"`

	// HeightDefaultCm prefills the height form control.
	HeightDefaultCm float64 `json:"height_default_cm"`

	// WeightDefaultKg prefills the weight form control.
	WeightDefaultKg float64 `json:"weight_default_kg"`
}

// NewGaugeSpec converts the domain gauge geometry into its transport
// representation.
//
// Parameters:
//   - gauge: the domain gauge
//
// Returns:
//   - GaugeSpec: the transport gauge
func NewGaugeSpec(gauge bmi.Gauge) GaugeSpec {
	bands := make([]GaugeBand, len(gauge.Bands))
	for i, b := range gauge.Bands {
		bands[i] = GaugeBand{
			From:  b.From,
			To:    b.To,
			Color: b.Color,
			Label: b.Category.String(),
		}
	}
	return GaugeSpec{
		Max:   gauge.Max,
		Value: gauge.Value,
		Bands: bands,
	}
}

// NewInvalidInputError converts a domain validation failure into the
// field-level transport error.
//
// Parameters:
//   - ie: the domain validation failure
//
// Returns:
//   - ValidationError: the transport representation
func NewInvalidInputError(ie *bmi.InvalidInputError) ValidationError {
	return ValidationError{
		Field:   string(ie.Field),
		Rule:    string(ie.Rule),
		Message: ie.Message,
	}
}

// CategoryRange formats the BMI range of a category for the
// classification table.
//
// Parameters:
//   - c: the category
//   - t: the thresholds in effect
//
// Returns:
//   - string: human-readable range
func CategoryRange(c valueobject.Category, t bmi.Thresholds) string {
	switch c {
	case valueobject.CategoryUnderweight:
		return fmt.Sprintf("below %.1f", t.Underweight)
	case valueobject.CategoryNormal:
		return fmt.Sprintf("%.1f – %.1f", t.Underweight, t.Normal)
	case valueobject.CategoryOverweight:
		return fmt.Sprintf("%.1f – %.1f", t.Normal, t.Overweight)
	default:
		return fmt.Sprintf("%.1f and above", t.Overweight)
	}
}
