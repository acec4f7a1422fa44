package router

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCancelled is returned by a screen when the user backs out of it.
	// Transition functions treat it as a back action, not a failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrAlreadyRunning is returned by Run when the router is already running.
	ErrAlreadyRunning = errors.New("router: already running")
)

// ConfigurationError reports a router that cannot be started because its
// wiring is incomplete. It is always returned before any screen runs.
type ConfigurationError struct {
	Op      string   // Check that failed (e.g., "validate", "start")
	Missing []string // Screens with no registered function
	Err     error    // Underlying error, if any
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("router: configuration: ")
	b.WriteString(e.Op)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, ": screens not registered: %s", strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError checks if an error is a router configuration error.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
