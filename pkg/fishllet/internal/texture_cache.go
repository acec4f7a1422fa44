package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultMaxCacheSize = 64

// TextTexture is a rendered line of text.
type TextTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

type textKey struct {
	text  string
	font  *ttf.Font
	color sdl.Color
}

// TextCache keeps rendered text textures so static labels are rasterized
// once per screen instead of once per frame. Least recently used entries
// are destroyed when the cache is full.
type TextCache struct {
	renderer *sdl.Renderer
	textures map[textKey]TextTexture
	order    []textKey
	maxSize  int
}

func NewTextCache(renderer *sdl.Renderer) *TextCache {
	return NewTextCacheWithSize(renderer, defaultMaxCacheSize)
}

func NewTextCacheWithSize(renderer *sdl.Renderer, maxSize int) *TextCache {
	return &TextCache{
		renderer: renderer,
		textures: make(map[textKey]TextTexture),
		order:    make([]textKey, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Get returns the texture for text in font and color, rendering it on a miss.
func (c *TextCache) Get(text string, font *ttf.Font, color sdl.Color) (TextTexture, error) {
	key := textKey{text: text, font: font, color: color}
	if t, ok := c.textures[key]; ok {
		c.moveToEnd(key)
		return t, nil
	}

	t, err := RenderTextTexture(c.renderer, text, font, color)
	if err != nil {
		return TextTexture{}, err
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = t
	c.order = append(c.order, key)
	return t, nil
}

func (c *TextCache) moveToEnd(key textKey) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if t, ok := c.textures[oldest]; ok {
		t.Texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextCache) Destroy() {
	for _, t := range c.textures {
		t.Texture.Destroy()
	}
	c.textures = make(map[textKey]TextTexture)
	c.order = c.order[:0]
}

// RenderTextTexture rasterizes a single line of text.
func RenderTextTexture(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) (TextTexture, error) {
	if text == "" {
		text = " "
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return TextTexture{}, fmt.Errorf("render text %q: %w", text, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return TextTexture{}, fmt.Errorf("create text texture: %w", err)
	}
	return TextTexture{Texture: texture, W: surface.W, H: surface.H}, nil
}
