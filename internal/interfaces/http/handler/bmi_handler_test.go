package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/bmi-go/internal/application/dto"
	"github.com/hapkiduki/bmi-go/internal/application/port"
	"github.com/hapkiduki/bmi-go/internal/application/usecase"
	"github.com/hapkiduki/bmi-go/internal/domain/bmi"
)

func newTestHandler() *BMIHandler {
	uc := usecase.NewCalculateBMI(bmi.DefaultThresholds(), NewTipCatalog(), port.NopLogger{})
	return NewBMIHandler(uc, 170, 70, port.NopLogger{})
}

func doRequest(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	newTestHandler().Routes().ServeHTTP(rec, req)
	return rec
}

func TestBMIHandler_Calculate_Success(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/", `{"height_cm": "170", "weight_kg": "70"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.APIResponse[dto.CalculateResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.InDelta(t, 24.22, resp.Data.BMI, 0.01)
	assert.Equal(t, "24.2", resp.Data.BMIDisplay)
	assert.Equal(t, "Normal weight", resp.Data.Category)
	assert.NotEmpty(t, resp.Data.Tip)
	assert.NotEmpty(t, resp.Data.Disclaimer)
	assert.Len(t, resp.Data.Gauge.Bands, 4)
}

func TestBMIHandler_Calculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantRule  string
	}{
		{
			name:      "zero height",
			body:      `{"height_cm": "0", "weight_kg": "70"}`,
			wantField: "height_cm",
			wantRule:  "non_positive",
		},
		{
			name:      "negative weight",
			body:      `{"height_cm": "170", "weight_kg": "-5"}`,
			wantField: "weight_kg",
			wantRule:  "non_positive",
		},
		{
			name:      "height above maximum",
			body:      `{"height_cm": "301", "weight_kg": "70"}`,
			wantField: "height_cm",
			wantRule:  "above_maximum",
		},
		{
			name:      "non-numeric height",
			body:      `{"height_cm": "tall", "weight_kg": "70"}`,
			wantField: "height_cm",
			wantRule:  "non_numeric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, http.MethodPost, "/", tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp dto.APIResponse[dto.CalculateResponse]
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
			require.Len(t, resp.Error.ValidationErrors, 1)
			assert.Equal(t, tt.wantField, resp.Error.ValidationErrors[0].Field)
			assert.Equal(t, tt.wantRule, resp.Error.ValidationErrors[0].Rule)
			assert.NotEmpty(t, resp.Error.ValidationErrors[0].Message)
		})
	}
}

func TestBMIHandler_Calculate_MalformedBody(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/", `{"height_cm": `)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.APIResponse[dto.CalculateResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestBMIHandler_Categories(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/categories", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.APIResponse[[]dto.CategoryInfo]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 4)
	assert.Equal(t, "Underweight", resp.Data[0].Name)
	assert.Equal(t, "Obese", resp.Data[3].Name)
}

func TestBMIHandler_InputConfig(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/config", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.APIResponse[dto.InputConfigResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 100.0, resp.Data.HeightMinCm)
	assert.Equal(t, 300.0, resp.Data.HeightMaxCm)
	assert.Equal(t, 170.0, resp.Data.HeightDefaultCm)
	assert.Equal(t, 70.0, resp.Data.WeightDefaultKg)
}

func TestTipCatalog(t *testing.T) {
	catalog := NewTipCatalog()

	for _, key := range []string{"underweight", "normal", "overweight", "obese"} {
		assert.NotEmpty(t, catalog.Tip(key), "missing tip for %q", key)
	}
	assert.Empty(t, catalog.Tip("unknown"))
	assert.NotEmpty(t, catalog.Disclaimer())
}
