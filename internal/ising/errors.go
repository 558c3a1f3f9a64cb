package ising

import (
	"errors"
	"fmt"
)

// Domain errors for Metropolis updates.
var (
	// ErrInvalidEnergy indicates an acceptance exponent that is neither <= 0
	// nor > 0, such as NaN.
	ErrInvalidEnergy = errors.New("ising: invalid energy for acceptance ratio")

	// ErrInvalidState indicates a flip of a cell that does not hold -1 or +1.
	ErrInvalidState = errors.New("ising: invalid spin state to flip")
)

// StepError wraps a failed update with the step and site it occurred at.
type StepError struct {
	Step    int
	I, J    int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d at site (%d,%d): %v", e.Step, e.I, e.J, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
