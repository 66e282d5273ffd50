package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"workout-generator-api/internal/workout"
)

// number accepts a JSON number or a string holding one.
type number struct {
	value float64
	set   bool
}

func (n *number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = number{}
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("not a number: %s", b)
		}
		f, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("not a finite number: %s", b)
	}

	*n = number{value: f, set: true}
	return nil
}

type generateRequest struct {
	Name         string `json:"name"`
	AgeRange     string `json:"age_range"`
	Gender       string `json:"gender"`
	Height       number `json:"height"`
	Weight       number `json:"weight"`
	FitnessLevel string `json:"fitness_level"`
}

var errMissing = errors.New("missing value")

func decodeGenerateRequest(body io.Reader) (*generateRequest, error) {
	var req generateRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var fieldErr *json.UnmarshalTypeError
		if errors.As(err, &fieldErr) {
			return nil, &ConversionError{Field: fieldErr.Field, Err: err}
		}
		return nil, &ConversionError{Err: err}
	}

	if !req.Height.set {
		return nil, &ConversionError{Field: "height", Err: errMissing}
	}
	if !req.Weight.set {
		return nil, &ConversionError{Field: "weight", Err: errMissing}
	}
	return &req, nil
}

// profile validates the request and returns the generator input with the
// name trimmed.
func (r *generateRequest) profile() (workout.Profile, error) {
	name := strings.TrimSpace(r.Name)
	switch {
	case name == "":
		return workout.Profile{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	case r.Height.value <= 0:
		return workout.Profile{}, &ValidationError{Field: "height", Reason: "must be positive"}
	case r.Weight.value <= 0:
		return workout.Profile{}, &ValidationError{Field: "weight", Reason: "must be positive"}
	}

	heightM := r.Height.value / 100
	if bmi := r.Weight.value / (heightM * heightM); math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		return workout.Profile{}, &ValidationError{Field: "height", Reason: "out of range for weight"}
	}

	return workout.Profile{
		Name:         name,
		AgeRange:     r.AgeRange,
		Gender:       r.Gender,
		HeightCm:     r.Height.value,
		WeightKg:     r.Weight.value,
		FitnessLevel: r.FitnessLevel,
	}, nil
}
