// Package logo rasterizes the storefront's vector logo.
package logo

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed fishllet.svg
var fishlletSVG []byte

// ErrInvalidSize is returned when asked to rasterize to an empty image.
var ErrInvalidSize = errors.New("logo: width and height must be positive")

// SVG returns the embedded logo document.
func SVG() []byte {
	out := make([]byte, len(fishlletSVG))
	copy(out, fishlletSVG)
	return out
}

// Render rasterizes the embedded logo to a w x h image.
func Render(w, h int) (*image.RGBA, error) {
	return Rasterize(bytes.NewReader(fishlletSVG), w, h)
}

// Rasterize reads an SVG document and draws it scaled to w x h.
func Rasterize(r io.Reader, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}

	icon, err := oksvg.ReadIconStream(r, oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("logo: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
