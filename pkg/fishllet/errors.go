package fishllet

import (
	"errors"
	"fmt"

	"github.com/fishllet/storefront/pkg/fishllet/router"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user backed out of a screen (pressed B, etc.).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = router.ErrCancelled

	errNotInitialized = errors.New("ui not initialized")
)

// InfrastructureError represents a UI-level failure (SDL could not start,
// a font is missing, rendering failed). These errors are fatal to the
// running screen.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fishllet: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fishllet: %s", e.Op)
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

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
