// Package handler contains the HTTP handlers for the calculator API.
// Handlers translate between the transport (JSON over chi) and the
// application use cases: they bind requests, map domain errors to
// status codes, and never contain calculation logic themselves.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hapkiduki/bmi-go/internal/application/dto"
	"github.com/hapkiduki/bmi-go/internal/application/port"
	"github.com/hapkiduki/bmi-go/internal/application/usecase"
	"github.com/hapkiduki/bmi-go/internal/domain/bmi"
)

// BMIHandler serves the BMI calculation endpoints.
type BMIHandler struct {
	uc            *usecase.CalculateBMI
	heightDefault float64
	weightDefault float64
	logger        port.Logger
}

// NewBMIHandler creates the handler with its use case and the form
// defaults surfaced to the client.
//
// Parameters:
//   - uc: the calculation use case
//   - heightDefault: prefill value for the height control
//   - weightDefault: prefill value for the weight control
//   - logger: request-scoped logging
//
// Returns:
//   - *BMIHandler: the configured handler
func NewBMIHandler(uc *usecase.CalculateBMI, heightDefault, weightDefault float64, logger port.Logger) *BMIHandler {
	return &BMIHandler{
		uc:            uc,
		heightDefault: heightDefault,
		weightDefault: weightDefault,
		logger:        logger,
	}
}

// Routes mounts the BMI endpoints on a chi router.
//
// Returns:
//   - chi.Router: router with the BMI routes mounted
func (h *BMIHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Calculate)
	r.Get("/categories", h.Categories)
	r.Get("/config", h.InputConfig)
	return r
}

// Calculate handles POST /api/v1/bmi.
// A malformed body is a 400; input the validator rejects is a 422 with
// the offending field and rule so the client can highlight the control.
func (h *BMIHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRequest
	if err := render.Bind(r, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[dto.CalculateResponse]("BAD_REQUEST", "request body must be valid JSON"))
		return
	}

	resp, err := h.uc.Execute(r.Context(), req)
	if err != nil {
		if ie, ok := bmi.AsInvalidInput(err); ok {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, dto.NewValidationErrorResponse[dto.CalculateResponse](
				[]dto.ValidationError{dto.NewInvalidInputError(ie)},
			))
			return
		}

		h.logger.WithContext(r.Context()).Error("BMI calculation failed", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, dto.NewErrorResponse[dto.CalculateResponse]("INTERNAL_ERROR", "An unexpected error occurred"))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewSuccessResponse(resp))
}

// Categories handles GET /api/v1/bmi/categories: the classification
// table derived from the configured thresholds.
func (h *BMIHandler) Categories(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewSuccessResponse(h.uc.Categories()))
}

// InputConfig handles GET /api/v1/bmi/config: the input bounds and
// form defaults the client should mirror.
func (h *BMIHandler) InputConfig(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewSuccessResponse(h.uc.InputConfig(h.heightDefault, h.weightDefault)))
}
