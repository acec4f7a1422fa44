package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the storefront.
type Theme struct {
	BackgroundColor     sdl.Color // Screen background
	HeaderColor         sdl.Color // Title text drawn on the background
	CardColor           sdl.Color // Product card fill
	AccentColor         sdl.Color // Product names, selected options
	PriceColor          sdl.Color // Price text
	HintColor           sdl.Color // Footer hints and secondary text
	FocusColor          sdl.Color // Outline of the focused card
	FontPath            string    // Regular UI font
	BoldFontPath        string    // Bold UI font; falls back to FontPath
	BackgroundImagePath string    // Optional background image
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
