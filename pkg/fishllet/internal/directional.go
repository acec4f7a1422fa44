package internal

import (
	"time"

	"github.com/fishllet/storefront/pkg/fishllet/constants"
)

// ScrollRepeat turns a held Up or Down button into repeated scroll steps.
// The first repeat fires after delay, later ones every interval.
type ScrollRepeat struct {
	held           constants.VirtualButton
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewScrollRepeat creates a ScrollRepeat with 300ms delay and 60ms interval.
func NewScrollRepeat() ScrollRepeat {
	return ScrollRepeat{
		repeatDelay:    300 * time.Millisecond,
		repeatInterval: 60 * time.Millisecond,
	}
}

// Press starts tracking button if it is Up or Down. Reports whether it was.
func (r *ScrollRepeat) Press(button constants.VirtualButton) bool {
	if button != constants.VirtualButtonUp && button != constants.VirtualButtonDown {
		return false
	}
	r.held = button
	r.hasRepeated = false
	r.lastRepeatTime = time.Now()
	return true
}

// Release stops tracking button if it is the one held.
func (r *ScrollRepeat) Release(button constants.VirtualButton) {
	if r.held == button {
		r.held = constants.VirtualButtonUnassigned
		r.hasRepeated = false
	}
}

// Update returns the held button when a repeat is due, or VirtualButtonUnassigned.
// Call once per frame.
func (r *ScrollRepeat) Update() constants.VirtualButton {
	if r.held == constants.VirtualButtonUnassigned {
		return constants.VirtualButtonUnassigned
	}

	threshold := r.repeatInterval
	if !r.hasRepeated {
		threshold = r.repeatDelay
	}

	if time.Since(r.lastRepeatTime) >= threshold {
		r.lastRepeatTime = time.Now()
		r.hasRepeated = true
		return r.held
	}
	return constants.VirtualButtonUnassigned
}
