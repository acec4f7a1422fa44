//go:build !linux

package internal

import (
	"errors"
	"time"
)

// PowerButtonConfig configures the power button watcher.
type PowerButtonConfig struct {
	DevicePath     string
	LongPress      time.Duration
	SuspendCommand string
}

// PowerButtonWatcher is only available on Linux.
type PowerButtonWatcher struct{}

// StartPowerButtonWatcher always fails outside Linux.
func StartPowerButtonWatcher(PowerButtonConfig) (*PowerButtonWatcher, error) {
	return nil, errors.New("power button watcher requires linux evdev")
}

func (w *PowerButtonWatcher) Stop() {}
