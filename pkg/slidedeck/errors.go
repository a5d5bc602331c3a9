package slidedeck

import (
	"errors"
	"fmt"
)

// InfrastructureError represents a host-level failure that keeps a
// presentation from running at all (window creation failed, the terminal
// could not be initialized, an input device is missing, etc.).
//
// Navigation and visualization failures are never reported this way.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "open_clicker")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("slidedeck: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("slidedeck: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
