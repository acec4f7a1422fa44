package router

import (
	"errors"
	"reflect"
	"testing"
)

const (
	screenA Screen = iota
	screenB
	screenC
)

func exitAlways(Screen, any, *Stack) (Screen, any) {
	return ScreenExit, nil
}

func TestValidate(t *testing.T) {
	noop := func(any) (any, error) { return nil, nil }

	tests := []struct {
		name        string
		register    []Screen
		transition  TransitionFunc
		wantMissing []string
		wantErr     bool
	}{
		{
			name:       "complete",
			register:   []Screen{screenA, screenB, screenC},
			transition: exitAlways,
		},
		{
			name:        "one missing",
			register:    []Screen{screenA, screenC},
			transition:  exitAlways,
			wantMissing: []string{"1"},
			wantErr:     true,
		},
		{
			name:        "all missing",
			transition:  exitAlways,
			wantMissing: []string{"0", "1", "2"},
			wantErr:     true,
		},
		{
			name:     "no transition",
			register: []Screen{screenA, screenB, screenC},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New().Require(screenA, screenB, screenC)
			for _, s := range tt.register {
				r.Register(s, noop)
			}
			if tt.transition != nil {
				r.OnTransition(tt.transition)
			}

			err := r.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}

			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() error = %v, want *ConfigurationError", err)
			}
			if !reflect.DeepEqual(cfgErr.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", cfgErr.Missing, tt.wantMissing)
			}
		})
	}
}

func TestRunFailsBeforeShowingAnyScreen(t *testing.T) {
	shown := 0
	r := New().Require(screenA, screenB)
	r.Register(screenA, func(any) (any, error) {
		shown++
		return nil, nil
	})
	r.OnTransition(exitAlways)

	err := r.Run(screenA, nil)
	if !IsConfigurationError(err) {
		t.Fatalf("Run() error = %v, want configuration error", err)
	}
	if shown != 0 {
		t.Fatalf("screen shown %d times before validation failed", shown)
	}
}

func TestRunUnregisteredStart(t *testing.T) {
	r := New()
	r.Register(screenA, func(any) (any, error) { return nil, nil })
	r.OnTransition(exitAlways)

	if err := r.Run(screenB, nil); !IsConfigurationError(err) {
		t.Fatalf("Run() error = %v, want configuration error", err)
	}
}

func TestRunUnregisteredTransitionTarget(t *testing.T) {
	r := New()
	r.Register(screenA, func(any) (any, error) { return nil, nil })
	r.OnTransition(func(Screen, any, *Stack) (Screen, any) {
		return screenC, nil
	})

	err := r.Run(screenA, nil)
	if err == nil || IsConfigurationError(err) {
		t.Fatalf("Run() error = %v, want navigation error", err)
	}
}

func TestRunWrapsScreenErrors(t *testing.T) {
	boom := errors.New("boom")
	r := New()
	r.Register(screenA, func(any) (any, error) { return nil, boom })
	r.OnTransition(exitAlways)

	if err := r.Run(screenA, nil); !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	if r.Running() {
		t.Fatal("router still running after error")
	}
}

func TestRunIsNotReentrant(t *testing.T) {
	r := New()
	var nested error
	r.Register(screenA, func(any) (any, error) {
		nested = r.Run(screenA, nil)
		return nil, nil
	})
	r.OnTransition(exitAlways)

	if err := r.Run(screenA, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !errors.Is(nested, ErrAlreadyRunning) {
		t.Fatalf("nested Run() error = %v, want %v", nested, ErrAlreadyRunning)
	}
}

func TestRunPushPopRoundTrip(t *testing.T) {
	var visits []Screen
	var depths []int

	r := New().Require(screenA, screenB)
	for _, s := range []Screen{screenA, screenB} {
		s := s
		r.Register(s, func(input any) (any, error) {
			visits = append(visits, s)
			depths = append(depths, r.Stack().Len())
			return input, nil
		})
	}

	r.OnTransition(func(from Screen, result any, stack *Stack) (Screen, any) {
		switch from {
		case screenA:
			if result == "back" {
				return ScreenExit, nil
			}
			stack.Push(screenA, "back", nil)
			return screenB, "from-a"
		case screenB:
			if entry := stack.Pop(); entry != nil {
				return entry.Screen, entry.Input
			}
		}
		return ScreenExit, nil
	})

	if err := r.Run(screenA, "start"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if want := []Screen{screenA, screenB, screenA}; !reflect.DeepEqual(visits, want) {
		t.Fatalf("visits = %v, want %v", visits, want)
	}
	if want := []int{0, 1, 0}; !reflect.DeepEqual(depths, want) {
		t.Fatalf("depths = %v, want %v", depths, want)
	}
	if !r.Stack().IsEmpty() {
		t.Fatal("stack not empty after Run")
	}
}

func TestStack(t *testing.T) {
	s := NewStack()

	if s.Pop() != nil || s.Peek() != nil {
		t.Fatal("empty stack returned an entry")
	}

	s.Push(screenA, "a", nil)
	s.Push(screenB, "b", 7)

	if s.Len() != 2 || s.IsEmpty() {
		t.Fatalf("Len() = %d", s.Len())
	}
	if got := s.Screens(); !reflect.DeepEqual(got, []Screen{screenA, screenB}) {
		t.Fatalf("Screens() = %v", got)
	}
	if top := s.Peek(); top.Screen != screenB || top.Resume != 7 {
		t.Fatalf("Peek() = %+v", top)
	}

	top := s.Pop()
	if top.Screen != screenB || top.Input != "b" {
		t.Fatalf("Pop() = %+v", top)
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Fatal("stack not empty after Clear")
	}
}
