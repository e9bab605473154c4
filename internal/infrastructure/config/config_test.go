package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bmi-go", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)

	assert.Equal(t, 100.0, cfg.BMI.HeightMinCm)
	assert.Equal(t, 300.0, cfg.BMI.HeightMaxCm)
	assert.Equal(t, 10.0, cfg.BMI.WeightMinKg)
	assert.Equal(t, 500.0, cfg.BMI.WeightMaxKg)
	assert.Equal(t, 18.5, cfg.BMI.UnderweightThreshold)
	assert.Equal(t, 25.0, cfg.BMI.NormalThreshold)
	assert.Equal(t, 30.0, cfg.BMI.OverweightThreshold)
	assert.Equal(t, 170.0, cfg.BMI.HeightDefaultCm)
	assert.Equal(t, 70.0, cfg.BMI.WeightDefaultKg)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("BMI_SERVER_PORT", "9090")
	t.Setenv("BMI_BMI_HEIGHT_MAX_CM", "250")
	t.Setenv("BMI_BMI_WEIGHT_MAX_KG", "150")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 250.0, cfg.BMI.HeightMaxCm)
	assert.Equal(t, 150.0, cfg.BMI.WeightMaxKg)
}

func TestLoad_RejectsIncoherentThresholds(t *testing.T) {
	// Cutoffs out of order are a deployment error caught at startup
	t.Setenv("BMI_BMI_NORMAL_THRESHOLD", "15")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid threshold configuration")
}

func TestThresholdConfig_Thresholds(t *testing.T) {
	tc := ThresholdConfig{
		HeightMinCm:          100,
		HeightMaxCm:          300,
		WeightMinKg:          10,
		WeightMaxKg:          500,
		UnderweightThreshold: 18.5,
		NormalThreshold:      25.0,
		OverweightThreshold:  30.0,
		GaugeMax:             40,
	}

	th := tc.Thresholds()
	assert.Equal(t, 18.5, th.Underweight)
	assert.Equal(t, 25.0, th.Normal)
	assert.Equal(t, 30.0, th.Overweight)
	assert.Equal(t, 300.0, th.HeightMaxCm)
	assert.NoError(t, th.Validate())
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("BMI_TEST_STRING", "value")
	t.Setenv("BMI_TEST_INT", "42")
	t.Setenv("BMI_TEST_BOOL", "true")

	assert.Equal(t, "value", GetEnv("BMI_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BMI_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, GetEnvInt("BMI_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("BMI_TEST_MISSING", 7))
	assert.True(t, GetEnvBool("BMI_TEST_BOOL", false))
	assert.False(t, GetEnvBool("BMI_TEST_MISSING", false))
}
