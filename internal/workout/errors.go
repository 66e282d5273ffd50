package workout

import (
	"errors"
	"fmt"
)

var ErrInvalidFitnessLevel = errors.New("invalid fitness level")

// InvalidFitnessLevelError carries the level as the caller supplied it.
type InvalidFitnessLevelError struct {
	Level string
}

func (e *InvalidFitnessLevelError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidFitnessLevel, e.Level)
}

func (e *InvalidFitnessLevelError) Unwrap() error {
	return ErrInvalidFitnessLevel
}
