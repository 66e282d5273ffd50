package api

import (
	"errors"
	"net/http"

	"workout-generator-api/internal/workout"
)

const (
	msgValidation   = "Please enter valid data!"
	msgConversion   = "Invalid input. Please check your data."
	msgFitnessLevel = "Please choose a valid fitness level."
	msgInternal     = "Something went wrong. Please try again."
)

// ValidationError is returned for an empty name or a non-positive height or weight.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// ConversionError is returned when the body is not JSON or a numeric field
// is missing or not a number.
type ConversionError struct {
	Field string
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Field == "" {
		return "decode request: " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error()
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps an error to the HTTP status and the message shown to the client.
func statusFor(err error) (int, string) {
	var validationErr *ValidationError
	var conversionErr *ConversionError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, msgValidation
	case errors.As(err, &conversionErr):
		return http.StatusBadRequest, msgConversion
	case errors.Is(err, workout.ErrInvalidFitnessLevel):
		return http.StatusBadRequest, msgFitnessLevel
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, msg := statusFor(err)
	writeJSON(w, status, errorResponse{Error: msg})
}
