package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks construction-time validation failures
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrZeroVector is returned when a direction is requested from a zero-length vector
	ErrZeroVector = fmt.Errorf("zero-length vector: %w", ErrInvalidArgument)

	// ErrNotReady is returned when rendering starts without all required collaborators
	ErrNotReady = errors.New("renderer not ready")
)

// InvalidArgf builds an ErrInvalidArgument error naming the failed precondition
func InvalidArgf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}
