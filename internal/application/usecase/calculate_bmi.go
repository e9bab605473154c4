// Package usecase contains the application use cases that orchestrate
// the domain core for the presentation layer: parse raw input, run the
// validator and calculator, attach display metadata, and write the
// audit trail. The domain core itself stays free of logging and I/O;
// everything with a side effect happens here, around the call.
package usecase

import (
	"context"
	"fmt"

	"github.com/hapkiduki/bmi-go/internal/application/dto"
	"github.com/hapkiduki/bmi-go/internal/application/port"
	"github.com/hapkiduki/bmi-go/internal/domain/bmi"
	"github.com/hapkiduki/bmi-go/internal/domain/valueobject"
)

// CalculateBMI is the use case behind the calculator form: it turns a
// raw (height, weight) request into a fully renderable result.
type CalculateBMI struct {
	thresholds bmi.Thresholds
	validator  *bmi.Validator
	calculator *bmi.Calculator
	tips       port.TipCatalog
	logger     port.Logger
}

// NewCalculateBMI creates the use case with its collaborators.
//
// Parameters:
//   - thresholds: bounds and cutoffs loaded from configuration
//   - tips: guidance text catalog
//   - logger: audit trail sink
//
// Returns:
//   - *CalculateBMI: the configured use case
func NewCalculateBMI(thresholds bmi.Thresholds, tips port.TipCatalog, logger port.Logger) *CalculateBMI {
	return &CalculateBMI{
		thresholds: thresholds,
		validator:  bmi.NewValidator(thresholds),
		calculator: bmi.NewCalculator(thresholds),
		tips:       tips,
		logger:     logger,
	}
}

// Execute parses, validates, and computes a BMI result.
//
// The returned error is always an InvalidInput from the domain; the
// caller maps it to its own error surface. Rejections and successful
// computations are both logged here, with the request context, since
// the Validator and Calculator never log themselves.
//
// Parameters:
//   - ctx: request context (carries the request ID for logging)
//   - req: the raw form input
//
// Returns:
//   - dto.CalculateResponse: the renderable result
//   - error: *bmi.InvalidInputError if the input was rejected
func (uc *CalculateBMI) Execute(ctx context.Context, req dto.CalculateRequest) (dto.CalculateResponse, error) {
	log := uc.logger.WithContext(ctx)

	measurement, err := uc.validator.Parse(req.HeightCm, req.WeightKg)
	if err != nil {
		log.Warn("BMI input rejected",
			"height_cm", req.HeightCm,
			"weight_kg", req.WeightKg,
			"error", err.Error(),
		)
		return dto.CalculateResponse{}, err
	}

	result, err := uc.calculator.Compute(measurement)
	if err != nil {
		log.Warn("BMI computation rejected", "measurement", measurement.String(), "error", err.Error())
		return dto.CalculateResponse{}, err
	}

	log.Info("BMI calculated",
		"height_cm", measurement.HeightCm,
		"weight_kg", measurement.WeightKg,
		"bmi", result.Value,
		"category", result.Category.String(),
	)

	category := result.Category
	return dto.CalculateResponse{
		BMI:         result.Value,
		BMIDisplay:  fmt.Sprintf("%.1f", result.Value),
		Category:    category.String(),
		Color:       category.Color(),
		Emoji:       category.Emoji(),
		Description: category.Description(),
		Tip:         uc.tips.Tip(category.TipKey()),
		Disclaimer:  uc.tips.Disclaimer(),
		Gauge:       dto.NewGaugeSpec(bmi.NewGauge(uc.thresholds, result.Value)),
	}, nil
}

// Categories returns the classification table for the thresholds in
// effect, ordered from Underweight to Obese.
//
// Returns:
//   - []dto.CategoryInfo: one row per weight category
func (uc *CalculateBMI) Categories() []dto.CategoryInfo {
	categories := valueobject.Categories()
	infos := make([]dto.CategoryInfo, len(categories))
	for i, c := range categories {
		infos[i] = dto.CategoryInfo{
			Name:        c.String(),
			Range:       dto.CategoryRange(c, uc.thresholds),
			Color:       c.Color(),
			Description: c.Description(),
		}
	}
	return infos
}

// InputConfig returns the input bounds and form defaults the client
// should mirror.
//
// Parameters:
//   - heightDefault: prefill value for the height control
//   - weightDefault: prefill value for the weight control
//
// Returns:
//   - dto.InputConfigResponse: bounds and defaults for the form
func (uc *CalculateBMI) InputConfig(heightDefault, weightDefault float64) dto.InputConfigResponse {
	return dto.InputConfigResponse{
		HeightMinCm:     uc.thresholds.HeightMinCm,
		HeightMaxCm:     uc.thresholds.HeightMaxCm,
		WeightMinKg:     uc.thresholds.WeightMinKg,
		WeightMaxKg:     uc.thresholds.WeightMaxKg,
		HeightDefaultCm: heightDefault,
		WeightDefaultKg: weightDefault,
	}
}
