// Package bmi contains the BMI computation and classification core:
// the input validator, the calculator, and the gauge layout derived
// from the configured thresholds. Every component in this package is a
// pure function of its inputs and the injected Thresholds; there is no
// logging, no I/O, and no shared mutable state.
package bmi

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel for every validation and computation
// failure in this package. Callers have a single errors.Is channel to
// handle; the concrete *InvalidInputError carries the field and rule.
var ErrInvalidInput = errors.New("invalid input")

// Field identifies which input a validation failure refers to.
type Field string

// Input fields.
const (
	FieldHeight Field = "height_cm"
	FieldWeight Field = "weight_kg"
)

// Rule identifies which validation rule was violated.
type Rule string

// Validation rules.
const (
	RuleNonPositive  Rule = "non_positive"  // zero or negative value
	RuleBelowMinimum Rule = "below_minimum" // below the configured lower bound
	RuleAboveMaximum Rule = "above_maximum" // above the configured upper bound
	RuleNonNumeric   Rule = "non_numeric"   // raw text that does not parse as a number
)

// InvalidInputError describes a rejected input. It names the offending
// field and the violated rule so the presentation layer can highlight
// the right form control, and carries a ready-to-display message.
type InvalidInputError struct {
	// Field is the input that failed validation.
	Field Field

	// Rule is the validation rule that was violated.
	Rule Rule

	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap links the error to the ErrInvalidInput sentinel.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// IsInvalidInput checks if the error is an input validation failure.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error originates from input validation
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// AsInvalidInput extracts the structured validation failure from an
// error chain.
//
// Parameters:
//   - err: error to inspect
//
// Returns:
//   - *InvalidInputError: the structured failure, or nil
//   - bool: true if the extraction succeeded
func AsInvalidInput(err error) (*InvalidInputError, bool) {
	var ie *InvalidInputError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

// unit returns the display unit for a field, used in error messages.
func unit(f Field) string {
	if f == FieldWeight {
		return "kg"
	}
	return "cm"
}

func errNonPositive(f Field) error {
	return &InvalidInputError{
		Field:   f,
		Rule:    RuleNonPositive,
		Message: "must be a positive value",
	}
}

func errBelowMinimum(f Field, value, min, max float64) error {
	return &InvalidInputError{
		Field: f,
		Rule:  RuleBelowMinimum,
		Message: fmt.Sprintf("%.1f %s is too low, enter a value between %.0f and %.0f %s",
			value, unit(f), min, max, unit(f)),
	}
}

func errAboveMaximum(f Field, value, max float64) error {
	return &InvalidInputError{
		Field: f,
		Rule:  RuleAboveMaximum,
		Message: fmt.Sprintf("%.1f %s exceeds the realistic range, maximum allowed is %.0f %s",
			value, unit(f), max, unit(f)),
	}
}

func errNonNumeric(f Field, raw string) error {
	return &InvalidInputError{
		Field:   f,
		Rule:    RuleNonNumeric,
		Message: fmt.Sprintf("%q is not a number", raw),
	}
}
