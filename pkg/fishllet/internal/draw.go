package internal

import (
	"strings"

	"github.com/fishllet/storefront/pkg/fishllet/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FillRoundedRect fills rect with color, rounding its corners by radius.
func FillRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	radius = Min32(radius, Min32(rect.W, rect.H)/2)
	if radius <= 0 {
		renderer.FillRect(&rect)
		return
	}

	// Middle band, then one horizontal span per row of each rounded end.
	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})
	for dy := int32(0); dy < radius; dy++ {
		inset := radius - isqrt(radius*radius-(radius-dy)*(radius-dy))
		w := rect.W - 2*inset
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: w, H: 1})
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + rect.H - 1 - dy, W: w, H: 1})
	}
}

// DrawOutline draws a rectangle border of the given thickness.
func DrawOutline(renderer *sdl.Renderer, rect sdl.Rect, thickness int32, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for i := int32(0); i < thickness; i++ {
		r := sdl.Rect{X: rect.X - i, Y: rect.Y - i, W: rect.W + 2*i, H: rect.H + 2*i}
		renderer.DrawRect(&r)
	}
}

// WrapText splits text into lines no wider than maxWidth when drawn in font.
func WrapText(text string, font *ttf.Font, maxWidth int32) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if w, _, err := font.SizeUTF8(candidate); err == nil && int32(w) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// RenderMultilineText draws wrapped text with its top edge at y, aligned
// around x according to align. It returns the height used.
func RenderMultilineText(cache *TextCache, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	renderer := cache.renderer
	lineHeight := int32(font.Height())
	spacing := lineHeight / 5

	used := int32(0)
	for i, line := range WrapText(text, font, maxWidth) {
		if i > 0 {
			used += spacing
		}
		if line != "" {
			t, err := cache.Get(line, font, color)
			if err != nil {
				GetInternalLogger().Error("Failed to render text", "error", err)
				continue
			}
			lineX := x
			switch align {
			case constants.TextAlignCenter:
				lineX = x - t.W/2
			case constants.TextAlignRight:
				lineX = x - t.W
			}
			renderer.Copy(t.Texture, nil, &sdl.Rect{X: lineX, Y: y + used, W: t.W, H: t.H})
		}
		used += lineHeight
	}
	return used
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func isqrt(n int32) int32 {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
