// Package fishllet draws the Fishllet storefront with SDL: a catalog of
// product cards behind placeholder login and registration screens.
//
// The package handles SDL initialization, input processing and theming,
// and provides the concrete screens used by the app package.
package fishllet

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fishllet/storefront/pkg/fishllet/config"
	"github.com/fishllet/storefront/pkg/fishllet/constants"
	"github.com/fishllet/storefront/pkg/fishllet/internal"
)

// Options configures UI initialization.
type Options struct {
	WindowTitle    string // Window title displayed in windowed mode
	ShowBackground bool   // Whether to draw the background image
	BackgroundPath string // Background image path
	Width          int32  // Window width; 0 uses the display size
	Height         int32  // Window height; 0 uses the display size
	Borderless     bool
	Resizable      bool
	Fullscreen     bool

	BackgroundColor uint32 // 0xRRGGBB
	CardColor       uint32
	AccentColor     uint32
	PriceColor      uint32
	FontPath        string
	BoldFontPath    string

	LogPath  string     // Full path for log file including filename (creates parent directories)
	LogLevel slog.Level // Minimum level for the application logger

	PowerButton       bool   // Watch the power key through evdev
	PowerDevicePath   string
	PowerLongPress    time.Duration
	PowerSuspendShell string
}

var powerWatcher *internal.PowerButtonWatcher

// OptionsFromConfig converts a loaded configuration into Options.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	level, err := internal.ParseLevel(cfg.Log.Level)
	if err != nil {
		return Options{}, err
	}

	colors := make([]uint32, 4)
	for i, hex := range []string{cfg.Theme.BackgroundColor, cfg.Theme.CardColor, cfg.Theme.AccentColor, cfg.Theme.PriceColor} {
		if colors[i], err = config.ParseHexColor(hex); err != nil {
			return Options{}, err
		}
	}

	return Options{
		WindowTitle:       cfg.Window.Title,
		ShowBackground:    cfg.Window.ShowBackground,
		BackgroundPath:    cfg.Window.BackgroundPath,
		Width:             cfg.Window.Width,
		Height:            cfg.Window.Height,
		Borderless:        cfg.Window.Borderless,
		Resizable:         cfg.Window.Resizable,
		Fullscreen:        cfg.Window.Fullscreen,
		BackgroundColor:   colors[0],
		CardColor:         colors[1],
		AccentColor:       colors[2],
		PriceColor:        colors[3],
		FontPath:          cfg.Theme.FontPath,
		BoldFontPath:      cfg.Theme.BoldFontPath,
		LogPath:           cfg.Log.Path,
		LogLevel:          level,
		PowerButton:       cfg.Power.Enabled,
		PowerDevicePath:   cfg.Power.DevicePath,
		PowerLongPress:    cfg.Power.LongPress,
		PowerSuspendShell: cfg.Power.SuspendCommand,
	}, nil
}

// Init initializes logging, theming, SDL and input handling.
// Must be called before any screen is shown.
func Init(options Options) error {
	internal.SetLogPath(options.LogPath)
	internal.SetLogLevel(options.LogLevel)

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	internal.SetTheme(internal.Theme{
		BackgroundColor:     internal.HexToColor(options.BackgroundColor),
		HeaderColor:         internal.HexToColor(0xFFFFFF),
		CardColor:           internal.HexToColor(options.CardColor),
		AccentColor:         internal.HexToColor(options.AccentColor),
		PriceColor:          internal.HexToColor(options.PriceColor),
		HintColor:           internal.HexToColor(0xE6F0F8),
		FocusColor:          internal.HexToColor(0xFFD54F),
		FontPath:            options.FontPath,
		BoldFontPath:        options.BoldFontPath,
		BackgroundImagePath: options.BackgroundPath,
	})

	winOpts := internal.WindowOptions{
		Width:      options.Width,
		Height:     options.Height,
		Borderless: options.Borderless,
		Resizable:  options.Resizable,
		Fullscreen: options.Fullscreen,
	}

	if err := internal.Init(options.WindowTitle, options.ShowBackground, winOpts); err != nil {
		return NewInfrastructureError("init", err)
	}

	if options.PowerButton && !constants.IsDevMode() {
		w, err := internal.StartPowerButtonWatcher(internal.PowerButtonConfig{
			DevicePath:     options.PowerDevicePath,
			LongPress:      options.PowerLongPress,
			SuspendCommand: options.PowerSuspendShell,
		})
		if err != nil {
			internal.GetInternalLogger().Warn("Power button unavailable", "device", options.PowerDevicePath, "error", err)
		} else {
			powerWatcher = w
		}
	}

	return nil
}

// Close releases all SDL resources and shuts down the UI.
// Must be called before program exit to prevent resource leaks.
func Close() {
	if powerWatcher != nil {
		powerWatcher.Stop()
		powerWatcher = nil
	}
	destroyLogoTexture()
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first GetLogger or Init to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) error {
	l, err := internal.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("fishllet: %w", err)
	}
	internal.SetLogLevel(l)
	return nil
}

// Fatal logs err and exits. For use from main before the UI is running.
func Fatal(msg string, err error) {
	internal.GetLogger().Error(msg, "error", err)
	internal.CloseLogger()
	os.Exit(1)
}
