package fishllet

import (
	"unsafe"

	"github.com/fishllet/storefront/pkg/fishllet/internal"
	"github.com/fishllet/storefront/pkg/fishllet/logo"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	logoTexture *sdl.Texture
	logoSize    int32
)

// logoTextureFor returns the logo rasterized at size x size, reusing the
// previous texture when the size has not changed.
func logoTextureFor(renderer *sdl.Renderer, size int32) *sdl.Texture {
	if logoTexture != nil && logoSize == size {
		return logoTexture
	}
	destroyLogoTexture()

	img, err := logo.Render(int(size), int(size))
	if err != nil {
		internal.GetInternalLogger().Error("Failed to rasterize logo", "error", err)
		return nil
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(img.Rect.Dx()), int32(img.Rect.Dy()), 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_RGBA32),
	)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to create logo surface", "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to create logo texture", "error", err)
		return nil
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	logoTexture, logoSize = texture, size
	return logoTexture
}

func destroyLogoTexture() {
	if logoTexture != nil {
		logoTexture.Destroy()
		logoTexture, logoSize = nil, 0
	}
}
