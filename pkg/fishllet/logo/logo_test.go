package logo

import (
	"errors"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	img, err := Render(64, 64)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v", b)
	}

	painted := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Fatal("rendered logo is fully transparent")
	}
	if painted == 64*64 {
		t.Fatal("rendered logo has no transparent background")
	}
}

func TestRasterizeInvalidSize(t *testing.T) {
	if _, err := Render(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Render(0, 10) error = %v", err)
	}
}

func TestRasterizeInvalidDocument(t *testing.T) {
	if _, err := Rasterize(strings.NewReader("<svg><g></svg>"), 16, 16); err == nil {
		t.Fatal("Rasterize() accepted an invalid document")
	}
}

func TestSVGReturnsCopy(t *testing.T) {
	doc := SVG()
	doc[0] = 'x'
	if SVG()[0] != '<' {
		t.Fatal("SVG() exposed the embedded document")
	}
}
