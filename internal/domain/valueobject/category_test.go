package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories_Order(t *testing.T) {
	categories := Categories()

	assert.Equal(t, []Category{
		CategoryUnderweight,
		CategoryNormal,
		CategoryOverweight,
		CategoryObese,
	}, categories)
}

func TestCategory_Metadata(t *testing.T) {
	tests := []struct {
		category  Category
		wantColor string
		wantTip   string
	}{
		{category: CategoryUnderweight, wantColor: "#FFC300", wantTip: "underweight"},
		{category: CategoryNormal, wantColor: "#2ECC71", wantTip: "normal"},
		{category: CategoryOverweight, wantColor: "#FF5733", wantTip: "overweight"},
		{category: CategoryObese, wantColor: "#C70039", wantTip: "obese"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.True(t, tt.category.IsValid())
			assert.Equal(t, tt.wantColor, tt.category.Color())
			assert.Equal(t, tt.wantTip, tt.category.TipKey())
			assert.NotEmpty(t, tt.category.Emoji())
			assert.NotEmpty(t, tt.category.Description())
		})
	}
}

func TestCategory_IsValid_UnknownCategory(t *testing.T) {
	assert.False(t, Category("Svelte").IsValid())
}

func TestMeasurement(t *testing.T) {
	m := NewMeasurement(170, 70)

	assert.InDelta(t, 1.70, m.HeightMeters(), 1e-9)
	assert.Equal(t, "170.0 cm / 70.0 kg", m.String())
	assert.True(t, m.Equals(NewMeasurement(170, 70)))
	assert.False(t, m.Equals(NewMeasurement(170, 71)))
	assert.False(t, m.IsZero())
	assert.True(t, Measurement{}.IsZero())
}
