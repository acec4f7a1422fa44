package router

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"go.uber.org/atomic"
)

// Screen is a type-safe identifier for screens.
// Applications should define their own Screen constants using iota.
//
// Example:
//
//	const (
//	    ScreenLogin Screen = iota
//	    ScreenRegister
//	    ScreenHome
//	)
type Screen int

// ScreenFunc is a function that runs a screen.
// It takes an input and returns a result.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the screen that just completed, its result, and the navigation stack.
// It returns the next screen to navigate to and its input.
//
// Return (screen, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (ScreenExit, nil) to exit the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

var errNoTransition = errors.New("no transition function set")

// Router manages screen navigation with explicit data flow.
// Screens are registered with their functions, and a single transition
// function handles all routing logic in one place.
type Router struct {
	screens    map[Screen]ScreenFunc
	required   []Screen
	transition TransitionFunc
	stack      *Stack
	name       func(Screen) string
	logger     *slog.Logger
	running    atomic.Bool
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		stack:   NewStack(),
		name:    func(s Screen) string { return strconv.Itoa(int(s)) },
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this screen.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// Require declares the closed set of screens the router must be able to show.
// Validate and Run fail if any of them has no registered function.
func (r *Router) Require(screens ...Screen) *Router {
	r.required = append(r.required, screens...)
	return r
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// WithNames sets the function used to name screens in logs and errors.
func (r *Router) WithNames(fn func(Screen) string) *Router {
	if fn != nil {
		r.name = fn
	}
	return r
}

// WithLogger sets the logger used to trace navigation.
func (r *Router) WithLogger(logger *slog.Logger) *Router {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Name returns the display name of a screen.
func (r *Router) Name(screen Screen) string {
	return r.name(screen)
}

// Validate checks that every required screen is registered and that a
// transition function is set.
func (r *Router) Validate() error {
	var missing []string
	for _, s := range r.required {
		if fn, ok := r.screens[s]; !ok || fn == nil {
			missing = append(missing, r.name(s))
		}
	}

	if len(missing) > 0 {
		return &ConfigurationError{Op: "validate", Missing: missing}
	}
	if r.transition == nil {
		return &ConfigurationError{Op: "validate", Err: errNoTransition}
	}
	return nil
}

// Run starts the router at the given screen with the given input.
// It validates the registry first, then continues running until the
// transition function returns ScreenExit or an error occurs.
// The navigation stack is empty when Run starts and when it returns.
func (r *Router) Run(start Screen, input any) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if fn, ok := r.screens[start]; !ok || fn == nil {
		return &ConfigurationError{Op: "start", Missing: []string{r.name(start)}}
	}

	if !r.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer r.running.Store(false)

	r.stack.Clear()
	defer r.stack.Clear()

	current := start
	currentInput := input

	for {
		// Get the screen function
		fn, ok := r.screens[current]
		if !ok || fn == nil {
			return fmt.Errorf("router: screen %s not registered", r.name(current))
		}

		r.logger.Debug("Entering screen", "screen", r.name(current), "depth", r.stack.Len())

		// Run the screen
		result, err := fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %s error: %w", r.name(current), err)
		}

		// Determine next screen
		next, nextInput := r.transition(current, result, r.stack)

		// Check for exit
		if next == ScreenExit {
			r.logger.Debug("Exiting router", "from", r.name(current))
			return nil
		}

		// Move to next screen
		current = next
		currentInput = nextInput
	}
}

// Running reports whether Run is in progress.
func (r *Router) Running() bool {
	return r.running.Load()
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}
