package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/bmi-go/internal/application/dto"
	"github.com/hapkiduki/bmi-go/internal/application/port"
	"github.com/hapkiduki/bmi-go/internal/domain/bmi"
)

// stubCatalog returns canned guidance text keyed by category.
type stubCatalog struct{}

func (stubCatalog) Tip(key string) string { return "tip for " + key }
func (stubCatalog) Disclaimer() string    { return "talk to a professional" }

func newTestUseCase() *CalculateBMI {
	return NewCalculateBMI(bmi.DefaultThresholds(), stubCatalog{}, port.NopLogger{})
}

func TestCalculateBMI_Execute(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), dto.CalculateRequest{HeightCm: "170", WeightKg: "70"})
	require.NoError(t, err)

	assert.InDelta(t, 24.22, resp.BMI, 0.01)
	assert.Equal(t, "24.2", resp.BMIDisplay)
	assert.Equal(t, "Normal weight", resp.Category)
	assert.Equal(t, "#2ECC71", resp.Color)
	assert.Equal(t, "tip for normal", resp.Tip)
	assert.Equal(t, "talk to a professional", resp.Disclaimer)

	// Gauge geometry ships with the result
	assert.Equal(t, 40.0, resp.Gauge.Max)
	assert.InDelta(t, resp.BMI, resp.Gauge.Value, 1e-9)
	require.Len(t, resp.Gauge.Bands, 4)
	assert.Equal(t, "Underweight", resp.Gauge.Bands[0].Label)
	assert.Equal(t, 18.5, resp.Gauge.Bands[0].To)
}

func TestCalculateBMI_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase()

	tests := []struct {
		name      string
		heightCm  string
		weightKg  string
		wantField bmi.Field
		wantRule  bmi.Rule
	}{
		{name: "zero height", heightCm: "0", weightKg: "70", wantField: bmi.FieldHeight, wantRule: bmi.RuleNonPositive},
		{name: "negative weight", heightCm: "170", weightKg: "-5", wantField: bmi.FieldWeight, wantRule: bmi.RuleNonPositive},
		{name: "height above maximum", heightCm: "301", weightKg: "70", wantField: bmi.FieldHeight, wantRule: bmi.RuleAboveMaximum},
		{name: "non-numeric weight", heightCm: "170", weightKg: "seventy", wantField: bmi.FieldWeight, wantRule: bmi.RuleNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), dto.CalculateRequest{HeightCm: tt.heightCm, WeightKg: tt.weightKg})
			require.Error(t, err)

			ie, ok := bmi.AsInvalidInput(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, ie.Field)
			assert.Equal(t, tt.wantRule, ie.Rule)
		})
	}
}

func TestCalculateBMI_Categories(t *testing.T) {
	uc := newTestUseCase()

	infos := uc.Categories()
	require.Len(t, infos, 4)

	assert.Equal(t, "Underweight", infos[0].Name)
	assert.Equal(t, "below 18.5", infos[0].Range)
	assert.Equal(t, "Normal weight", infos[1].Name)
	assert.Equal(t, "18.5 – 25.0", infos[1].Range)
	assert.Equal(t, "Obese", infos[3].Name)
	assert.Equal(t, "30.0 and above", infos[3].Range)

	for _, info := range infos {
		assert.NotEmpty(t, info.Color)
		assert.NotEmpty(t, info.Description)
	}
}

func TestCalculateBMI_InputConfig(t *testing.T) {
	uc := newTestUseCase()

	cfg := uc.InputConfig(170, 70)
	assert.Equal(t, 100.0, cfg.HeightMinCm)
	assert.Equal(t, 300.0, cfg.HeightMaxCm)
	assert.Equal(t, 10.0, cfg.WeightMinKg)
	assert.Equal(t, 500.0, cfg.WeightMaxKg)
	assert.Equal(t, 170.0, cfg.HeightDefaultCm)
	assert.Equal(t, 70.0, cfg.WeightDefaultKg)
}
