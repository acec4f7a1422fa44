package fishllet

import (
	"github.com/fishllet/storefront/pkg/fishllet/constants"
	"github.com/fishllet/storefront/pkg/fishllet/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// FooterHelpItem is a button hint shown at the bottom of a screen.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// renderFooter draws help items left to right along the bottom edge.
func renderFooter(renderer *sdl.Renderer, cache *internal.TextCache, items []FooterHelpItem, margins internal.Padding) {
	if len(items) == 0 {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont

	pillHeight := int32(font.Height()) + 8
	y := window.GetHeight() - margins.Bottom - pillHeight
	x := margins.Left

	for _, item := range items {
		button, err := cache.Get(item.ButtonName, font, theme.AccentColor)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to render footer button", "error", err)
			continue
		}
		help, err := cache.Get(item.HelpText, font, theme.HintColor)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to render footer text", "error", err)
			continue
		}

		pillWidth := internal.Max32(button.W+16, pillHeight)
		internal.FillRoundedRect(renderer, sdl.Rect{X: x, Y: y, W: pillWidth, H: pillHeight}, pillHeight/2, theme.CardColor)
		renderer.Copy(button.Texture, nil, &sdl.Rect{X: x + (pillWidth-button.W)/2, Y: y + (pillHeight-button.H)/2, W: button.W, H: button.H})
		x += pillWidth + 8

		renderer.Copy(help.Texture, nil, &sdl.Rect{X: x, Y: y + (pillHeight-help.H)/2, W: help.W, H: help.H})
		x += help.W + 24
	}
}

// footerItem builds a help item labelled with the button's name.
func footerItem(button constants.VirtualButton, help string) FooterHelpItem {
	return FooterHelpItem{ButtonName: button.GetName(), HelpText: help}
}
