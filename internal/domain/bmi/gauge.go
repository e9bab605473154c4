package bmi

import "github.com/hapkiduki/bmi-go/internal/domain/valueobject"

// Band is one colored segment of the gauge, covering the BMI range of
// a single category.
type Band struct {
	// From is the inclusive lower end of the band.
	From float64 `json:"from"`

	// To is the exclusive upper end of the band.
	To float64 `json:"to"`

	// Category is the weight category the band represents.
	Category valueobject.Category `json:"category"`

	// Color is the band's hex color.
	Color string `json:"color"`
}

// Gauge describes the dial the client renders next to the result: the
// scale, the colored category bands, and where the needle points. The
// service ships only this geometry; drawing is the client's job.
type Gauge struct {
	// Max is the upper end of the gauge scale.
	Max float64 `json:"max"`

	// Value is the needle position, i.e. the computed BMI.
	Value float64 `json:"value"`

	// Bands are the colored segments in ascending order. They
	// partition [0, Max) with no gaps or overlaps.
	Bands []Band `json:"bands"`
}

// NewGauge derives the gauge layout for a computed BMI value from the
// configured cutoffs. Pure; identical inputs yield identical layouts.
//
// Parameters:
//   - thresholds: category cutoff configuration
//   - value: the computed BMI value (needle position)
//
// Returns:
//   - Gauge: the gauge geometry
func NewGauge(thresholds Thresholds, value float64) Gauge {
	edges := []float64{0, thresholds.Underweight, thresholds.Normal, thresholds.Overweight, thresholds.GaugeMax}
	categories := valueobject.Categories()

	bands := make([]Band, len(categories))
	for i, cat := range categories {
		bands[i] = Band{
			From:     edges[i],
			To:       edges[i+1],
			Category: cat,
			Color:    cat.Color(),
		}
	}

	return Gauge{
		Max:   thresholds.GaugeMax,
		Value: value,
		Bands: bands,
	}
}
