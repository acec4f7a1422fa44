//go:build linux

package internal

import (
	"os/exec"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// PowerButtonConfig configures the power button watcher.
type PowerButtonConfig struct {
	DevicePath     string        // evdev node that reports KEY_POWER
	LongPress      time.Duration // Hold time that closes the application
	SuspendCommand string        // Shell command run on a short press; empty ignores short presses
}

// PowerButtonWatcher reads the power key from an evdev device on handhelds
// where SDL does not see it. A long press quits the application.
type PowerButtonWatcher struct {
	config  PowerButtonConfig
	device  *evdev.InputDevice
	stopped atomic.Bool
}

// StartPowerButtonWatcher opens the device and starts watching it.
func StartPowerButtonWatcher(config PowerButtonConfig) (*PowerButtonWatcher, error) {
	device, err := evdev.Open(config.DevicePath)
	if err != nil {
		return nil, err
	}

	w := &PowerButtonWatcher{config: config, device: device}
	go w.run()

	GetInternalLogger().Debug("Watching power button", "device", config.DevicePath)
	return w, nil
}

func (w *PowerButtonWatcher) run() {
	var pressedAt time.Time
	for {
		event, err := w.device.ReadOne()
		if err != nil {
			if !w.stopped.Load() {
				GetInternalLogger().Error("Power button watcher stopped", "error", err)
			}
			return
		}

		if event.Type != evdev.EV_KEY || event.Code != evdev.KEY_POWER {
			continue
		}

		switch event.Value {
		case 1:
			pressedAt = time.Now()
		case 0:
			if pressedAt.IsZero() {
				continue
			}
			held := time.Since(pressedAt)
			pressedAt = time.Time{}
			w.handlePress(held)
		}
	}
}

func (w *PowerButtonWatcher) handlePress(held time.Duration) {
	if held >= w.config.LongPress {
		GetInternalLogger().Info("Power button held, quitting", "held", held)
		if _, err := sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT, Timestamp: sdl.GetTicks()}); err != nil {
			GetInternalLogger().Error("Failed to post quit event", "error", err)
		}
		return
	}

	if w.config.SuspendCommand == "" {
		return
	}
	if err := exec.Command("/bin/sh", "-c", w.config.SuspendCommand).Run(); err != nil {
		GetInternalLogger().Error("Suspend command failed", "command", w.config.SuspendCommand, "error", err)
	}
}

// Stop closes the device. The watcher goroutine exits on its next read.
func (w *PowerButtonWatcher) Stop() {
	if !w.stopped.CompareAndSwap(false, true) {
		return
	}
	w.device.Close()
}
