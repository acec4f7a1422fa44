package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes for each text role.
type FontSizes struct {
	Header int
	Name   int
	Price  int
	Small  int
}

// DefaultFontSizes match the storefront's card styling.
var DefaultFontSizes = FontSizes{
	Header: 32,
	Name:   20,
	Price:  16,
	Small:  14,
}

type fontsCollection struct {
	HeaderFont *ttf.Font
	NameFont   *ttf.Font
	PriceFont  *ttf.Font
	SmallFont  *ttf.Font
}

// Fonts holds the loaded fonts. Valid between Init and SDLCleanup.
var Fonts fontsCollection

func initFonts(theme Theme, sizes FontSizes) error {
	// Without a bold face, embolden the regular one.
	boldPath, synthetic := theme.BoldFontPath, false
	if boldPath == "" {
		boldPath, synthetic = theme.FontPath, true
	}

	var err error
	if Fonts.HeaderFont, err = openFont(boldPath, sizes.Header, synthetic); err != nil {
		return err
	}
	if Fonts.NameFont, err = openFont(boldPath, sizes.Name, synthetic); err != nil {
		return err
	}
	if Fonts.PriceFont, err = openFont(theme.FontPath, sizes.Price, false); err != nil {
		return err
	}
	if Fonts.SmallFont, err = openFont(theme.FontPath, sizes.Small, false); err != nil {
		return err
	}
	return nil
}

func openFont(path string, size int, bold bool) (*ttf.Font, error) {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	if bold {
		font.SetStyle(ttf.STYLE_BOLD)
	}
	return font, nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.HeaderFont, Fonts.NameFont, Fonts.PriceFont, Fonts.SmallFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsCollection{}
}
