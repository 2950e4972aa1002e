// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/maximillianbartolo/BSS/pkg/entity"
	"github.com/maximillianbartolo/BSS/pkg/physics"
)

// Minimap geometry: a square panel pinned to the top-right corner, drawn at
// a fixed wide-angle zoom and always centered on the ship.
const (
	minimapSizePx   = 200.0
	minimapMarginPx = 10.0
	minimapBorderPx = 2.0
	minimapZoom     = 0.01
)

// Camera maps the simulation's world units onto window pixels. The engo
// camera entity itself never moves: the flight systems project every visual
// into window space each frame, which keeps the ship pinned to the window
// center at any zoom level.
type Camera struct {
	viewW float64
	viewH float64
}

// NewCamera creates a camera with an empty viewport. Call Refresh or
// SetViewport before projecting.
func NewCamera() *Camera {
	return &Camera{}
}

// Refresh samples the current window size from engo.
func (c *Camera) Refresh() {
	c.SetViewport(float64(engo.GameWidth()), float64(engo.GameHeight()))
}

// SetViewport sets the projection surface size in pixels.
func (c *Camera) SetViewport(width, height float64) {
	c.viewW = width
	c.viewH = height
}

// Viewport returns the current projection surface size in pixels.
func (c *Camera) Viewport() (width, height float64) {
	return c.viewW, c.viewH
}

// Projector builds the world-to-window projection for one frame, centered
// on the given world point at the given zoom.
func (c *Camera) Projector(center physics.Vector2D, zoom float64) physics.Projector {
	return physics.NewProjector(center, zoom, c.viewW, c.viewH)
}

// MinimapOrigin returns the top-left window position of the minimap panel.
func (c *Camera) MinimapOrigin() (x, y float64) {
	return c.viewW - minimapSizePx - minimapMarginPx, minimapMarginPx
}

// MinimapProjector builds the projection into the minimap panel's local
// coordinates, ship-centered at the panel's fixed zoom.
func (c *Camera) MinimapProjector(center physics.Vector2D) physics.Projector {
	return physics.NewProjector(center, minimapZoom, minimapSizePx, minimapSizePx)
}

// Offscreen reports whether a disc of the given pixel radius around a
// window position lies entirely outside the viewport.
func (c *Camera) Offscreen(screen physics.Vector2D, radiusPx float64) bool {
	return screen.X+radiusPx < 0 || screen.X-radiusPx > c.viewW ||
		screen.Y+radiusPx < 0 || screen.Y-radiusPx > c.viewH
}

// BodyScreenRadius is a body's on-screen radius at a zoom level, floored at
// one pixel so distant bodies stay visible as specks.
func BodyScreenRadius(body *entity.CelestialBody, zoom float64) float64 {
	r := body.RadiusWorld() * zoom
	if r < 1 {
		return 1
	}
	return r
}
