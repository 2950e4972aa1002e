// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"math"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/maximillianbartolo/BSS/pkg/logging"
	"github.com/maximillianbartolo/BSS/pkg/resource"
)

// Optional asset file names, resolved against the asset store's directory.
// Each one may be missing; the scene falls back to procedural art, no text,
// or silence.
const (
	assetShipSkin   = "ship_alt.png"
	assetToggleBlip = "blip1.wav"
	assetHUDFont    = "hud.ttf"
)

// blipVolume is the skin-toggle effect's own volume before the master scale.
const blipVolume = 0.7

const (
	// discAlpha is the translucency of every rendered body disc.
	discAlpha = 200

	// maxDiscRadiusPx caps rasterized disc textures. Bodies that project
	// larger than this (the sun fills the window well before max zoom)
	// switch to a GPU ellipse, which clips instead of allocating.
	maxDiscRadiusPx = 1024.0

	// Hull sprite sizes in pixels at zoom 1. The hull scales with the
	// camera zoom, unlike the bodies whose size comes from their radius.
	dartSizePx = 20.0
	skinSizePx = 40.0
)

// SpriteFactory builds the drawables the flight scene needs: body discs
// rasterized per zoom level and served from the sprite cache, the stock
// dart hull, and the alternate skin texture when its image loaded.
type SpriteFactory struct {
	cache  *resource.SpriteCache
	assets *resource.Store
	logger *logging.Logger

	skinTex   common.Drawable
	skinTried bool
}

// NewSpriteFactory creates a factory backed by the given sprite cache and
// asset store.
func NewSpriteFactory(cache *resource.SpriteCache, assets *resource.Store, logger *logging.Logger) *SpriteFactory {
	return &SpriteFactory{
		cache:  cache,
		assets: assets,
		logger: logger.With("component", "sprites"),
	}
}

// BodyDisc returns the drawable for one body at the given zoom together
// with the pixel size to draw it at. Small and medium discs are rasterized
// once per quantized zoom and reused from the cache; oversized ones fall
// back to a GPU ellipse. The disc itself is white so that the caller can
// tint it with the body's color.
func (f *SpriteFactory) BodyDisc(name string, zoom, radiusPx float64) (common.Drawable, float32) {
	if radiusPx > maxDiscRadiusPx {
		return common.Circle{}, float32(radiusPx * 2)
	}

	key := resource.SpriteKey(name, zoom)
	if sprite, ok := f.cache.Get(key); ok {
		tex := sprite.(common.Texture)
		return tex, tex.Width()
	}

	img := discImage(int(math.Ceil(radiusPx)))
	tex := common.NewTextureSingle(common.NewImageObject(img))
	f.cache.Put(key, tex)
	return tex, tex.Width()
}

// DiscTint is the render color for a body disc: the body's own color at the
// standard translucency.
func DiscTint(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: discAlpha}
}

// discImage rasterizes a white disc of the given pixel radius with a one
// pixel antialiased rim.
func discImage(radiusPx int) *image.NRGBA {
	if radiusPx < 1 {
		radiusPx = 1
	}
	d := radiusPx * 2
	img := image.NewNRGBA(image.Rect(0, 0, d, d))
	r := float64(radiusPx)

	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			dist := math.Sqrt(dx*dx + dy*dy)

			var a uint8
			switch {
			case dist <= r-1:
				a = 255
			case dist <= r:
				a = uint8(255 * (r - dist))
			}
			if a > 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: a})
			}
		}
	}
	return img
}

// Dart returns the stock hull shape: a swept dart pointing up, split into
// two triangles because the polygon is concave at the tail.
func Dart() common.ComplexTriangles {
	return common.ComplexTriangles{
		Points: []engo.Point{
			{X: 0.5, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0.75},
			{X: 0.5, Y: 0}, {X: 0.5, Y: 0.75}, {X: 0, Y: 1},
		},
	}
}

// ShipSkin returns the alternate hull texture, building it from the store's
// decoded image on first use. The second return is false when the asset
// never loaded, in which case the dart stays in service.
func (f *SpriteFactory) ShipSkin() (common.Drawable, bool) {
	if f.skinTex != nil {
		return f.skinTex, true
	}
	if f.skinTried {
		return nil, false
	}
	f.skinTried = true

	img, ok := f.assets.Image(assetShipSkin)
	if !ok {
		return nil, false
	}

	bounds := img.Bounds()
	nrgba := common.ImageToNRGBA(img, bounds.Dx(), bounds.Dy())
	f.skinTex = common.NewTextureSingle(common.NewImageObject(nrgba))
	f.logger.Debug("alternate skin texture built", "width", bounds.Dx(), "height", bounds.Dy())
	return f.skinTex, true
}
