// Package config loads the storefront's runtime configuration.
//
// Values are resolved in order: built-in defaults, then the TOML file, then
// environment variables. Command line flags are applied by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/fishllet/storefront/pkg/fishllet/constants"
)

// Config holds every runtime setting of the storefront.
type Config struct {
	Locale  string        `toml:"locale"`
	Log     LogConfig     `toml:"log"`
	Window  WindowConfig  `toml:"window"`
	Theme   ThemeConfig   `toml:"theme"`
	Catalog CatalogConfig `toml:"catalog"`
	Power   PowerConfig   `toml:"power"`
}

type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

type WindowConfig struct {
	Title          string `toml:"title"`
	Width          int32  `toml:"width"`  // 0 uses the display size
	Height         int32  `toml:"height"` // 0 uses the display size
	Borderless     bool   `toml:"borderless"`
	Resizable      bool   `toml:"resizable"`
	Fullscreen     bool   `toml:"fullscreen"`
	ShowBackground bool   `toml:"show_background"`
	BackgroundPath string `toml:"background_path"`
}

type ThemeConfig struct {
	BackgroundColor string `toml:"background_color"`
	CardColor       string `toml:"card_color"`
	AccentColor     string `toml:"accent_color"`
	PriceColor      string `toml:"price_color"`
	FontPath        string `toml:"font_path"`
	BoldFontPath    string `toml:"bold_font_path"`
}

type CatalogConfig struct {
	Path  string `toml:"path"`  // empty uses the built-in catalog
	Title string `toml:"title"` // overrides the catalog's own title
}

type PowerConfig struct {
	Enabled        bool          `toml:"enabled"`
	DevicePath     string        `toml:"device_path"`
	LongPress      time.Duration `toml:"long_press"`
	SuspendCommand string        `toml:"suspend_command"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Locale: "id",
		Log: LogConfig{
			Path:  "logs/fishllet.log",
			Level: "info",
		},
		Window: WindowConfig{
			Title:     "Fishllet",
			Resizable: true,
		},
		Theme: ThemeConfig{
			BackgroundColor: "#2380c4",
			CardColor:       "#ffffff",
			AccentColor:     "#2380c4",
			PriceColor:      "#555555",
			FontPath:        "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			BoldFontPath:    "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		},
		Power: PowerConfig{
			DevicePath: "/dev/input/event1",
			LongPress:  constants.DefaultLongPressTimeout,
		},
	}
}

// Load returns the configuration read from path, or the defaults when path
// is empty, with environment overrides applied.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := cfg.decode(data); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(constants.LocaleEnvVar); v != "" {
		c.Locale = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(constants.LogPathEnvVar); v != "" {
		c.Log.Path = v
	}
	if v := os.Getenv(constants.CatalogPathEnvVar); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv(constants.FontPathEnvVar); v != "" {
		c.Theme.FontPath = v
	}
	if v := os.Getenv(constants.BackgroundPathEnvVar); v != "" {
		c.Window.BackgroundPath = v
		c.Window.ShowBackground = true
	}
	if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", constants.WindowWidthEnvVar, v, err)
		}
		c.Window.Width = int32(n)
	}
	if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", constants.WindowHeightEnvVar, v, err)
		}
		c.Window.Height = int32(n)
	}
	return nil
}

// Validate reports settings that would make startup fail later.
func (c Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window: negative size %dx%d", c.Window.Width, c.Window.Height))
	}

	colors := []struct{ key, value string }{
		{"theme.background_color", c.Theme.BackgroundColor},
		{"theme.card_color", c.Theme.CardColor},
		{"theme.accent_color", c.Theme.AccentColor},
		{"theme.price_color", c.Theme.PriceColor},
	}
	for _, color := range colors {
		if _, err := ParseHexColor(color.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", color.key, err))
		}
	}

	if c.Power.Enabled && c.Power.DevicePath == "" {
		errs = append(errs, errors.New("power.device_path: required when power.enabled is set"))
	}
	if c.Power.LongPress < 0 {
		errs = append(errs, fmt.Errorf("power.long_press: negative duration %s", c.Power.LongPress))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// ParseHexColor parses "#rrggbb" or "rrggbb" into 0xRRGGBB.
func ParseHexColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}
