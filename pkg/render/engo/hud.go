// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/maximillianbartolo/BSS/pkg/engine"
	"github.com/maximillianbartolo/BSS/pkg/entity"
	"github.com/maximillianbartolo/BSS/pkg/logging"
	"github.com/maximillianbartolo/BSS/pkg/physics"
)

// HUD colors.
var (
	hudTextColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	noticeColor    = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	minimapBg      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	minimapBorder  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	minimapShipDot = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	hudMarginPx      = 10.0
	hudFontSize      = 24.0
	minimapShipDotPx = 2.0 // radius
)

// noticeText is shown while the ship is destroyed.
const noticeText = "SHIP DESTROYED - press R to restart"

// StatusLine formats the HUD readout for one frame.
func StatusLine(snap engine.Snapshot) string {
	return fmt.Sprintf("Speed: %.1f km/s Zoom: %.2f", snap.SpeedKmS, snap.Zoom)
}

// markerInsidePanel reports whether a marker dot fits fully inside the
// minimap panel, so nothing spills over the border.
func markerInsidePanel(local physics.Vector2D, radius float64) bool {
	return local.X-radius >= 0 && local.X+radius <= minimapSizePx &&
		local.Y-radius >= 0 && local.Y+radius <= minimapSizePx
}

// overlay is one HUD entity: a panel, a dot, or a line of text.
type overlay struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// marker is a body's dot on the minimap.
type marker struct {
	body   *entity.CelestialBody
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// HUDSystem draws the fixed overlays: the speed and zoom readout, the
// minimap with its body markers, and the crash notice. The text overlays
// are skipped entirely when the font asset did not load; the minimap needs
// no font and always shows.
type HUDSystem struct {
	sim    *engine.Simulation
	camera *Camera
	font   *common.Font
	logger *logging.Logger

	panel   *overlay
	markers []*marker
	shipDot *overlay
	status  *overlay
	notice  *overlay

	statusLine string
}

// NewHUDSystem creates the HUD. font may be nil, which disables the text
// overlays but keeps the minimap.
func NewHUDSystem(sim *engine.Simulation, camera *Camera, font *common.Font, logger *logging.Logger) *HUDSystem {
	return &HUDSystem{
		sim:    sim,
		camera: camera,
		font:   font,
		logger: logger.With("component", "hud"),
	}
}

// New creates the overlay entities and registers them for rendering.
func (h *HUDSystem) New(w *ecs.World) {
	snap := h.sim.Snapshot()

	h.panel = &overlay{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: common.Rectangle{
				BorderWidth: minimapBorderPx,
				BorderColor: minimapBorder,
			},
			Color: minimapBg,
		},
		space: common.SpaceComponent{
			Width:  minimapSizePx,
			Height: minimapSizePx,
		},
	}
	h.panel.render.SetZIndex(zMinimapPanel)

	for _, body := range snap.Bodies {
		r := float32(physics.MinimapMarkerRadius(body.Mass))
		m := &marker{
			body:  body,
			basic: ecs.NewBasic(),
			render: common.RenderComponent{
				Drawable: common.Circle{},
				Color:    body.Color,
				Hidden:   true,
			},
			space: common.SpaceComponent{
				Width:  2 * r,
				Height: 2 * r,
			},
		}
		m.render.SetZIndex(zMinimapMarker)
		h.markers = append(h.markers, m)
	}

	h.shipDot = &overlay{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: common.Circle{},
			Color:    minimapShipDot,
		},
		space: common.SpaceComponent{
			Width:  2 * minimapShipDotPx,
			Height: 2 * minimapShipDotPx,
		},
	}
	h.shipDot.render.SetZIndex(zMinimapShip)

	if h.font != nil {
		h.status = &overlay{
			basic: ecs.NewBasic(),
			render: common.RenderComponent{
				Drawable: common.Text{Font: h.font, Text: ""},
				Color:    hudTextColor,
			},
			space: common.SpaceComponent{
				Position: engo.Point{X: hudMarginPx, Y: hudMarginPx},
			},
		}
		h.status.render.SetZIndex(zHUDText)

		h.notice = &overlay{
			basic: ecs.NewBasic(),
			render: common.RenderComponent{
				Drawable: common.Text{Font: h.font, Text: noticeText},
				Color:    noticeColor,
				Hidden:   true,
			},
		}
		h.notice.render.SetZIndex(zNotice)
	}

	for _, system := range w.Systems() {
		render, ok := system.(*common.RenderSystem)
		if !ok {
			continue
		}
		render.Add(&h.panel.basic, &h.panel.render, &h.panel.space)
		for _, m := range h.markers {
			render.Add(&m.basic, &m.render, &m.space)
		}
		render.Add(&h.shipDot.basic, &h.shipDot.render, &h.shipDot.space)
		if h.status != nil {
			render.Add(&h.status.basic, &h.status.render, &h.status.space)
			render.Add(&h.notice.basic, &h.notice.render, &h.notice.space)
		}
	}

	h.logger.Info("HUD ready", "markers", len(h.markers), "text", h.font != nil)
}

// Update repositions the minimap and refreshes the readout.
func (h *HUDSystem) Update(dt float32) {
	snap := h.sim.Snapshot()
	h.placeMinimap(snap)
	h.placeText(snap)
}

// placeMinimap pins the panel to the top-right corner and projects the
// bodies around the ship at the panel's fixed zoom. Markers whose dot would
// cross the border are hidden.
func (h *HUDSystem) placeMinimap(snap engine.Snapshot) {
	x0, y0 := h.camera.MinimapOrigin()
	h.panel.space.Position = engo.Point{X: float32(x0), Y: float32(y0)}

	proj := h.camera.MinimapProjector(snap.Ship.Position)
	for _, m := range h.markers {
		local := proj.ToScreen(m.body.PositionWorld())
		r := float64(physics.MinimapMarkerRadius(m.body.Mass))
		if !markerInsidePanel(local, r) {
			m.render.Hidden = true
			continue
		}
		m.render.Hidden = false
		m.space.Position = engo.Point{
			X: float32(x0 + local.X - r),
			Y: float32(y0 + local.Y - r),
		}
	}

	// The minimap is ship-centered, so the white dot sits in the middle.
	h.shipDot.space.Position = engo.Point{
		X: float32(x0 + minimapSizePx/2 - minimapShipDotPx),
		Y: float32(y0 + minimapSizePx/2 - minimapShipDotPx),
	}
}

// placeText refreshes the readout line and toggles the crash notice. The
// text drawable is only swapped when the line actually changed.
func (h *HUDSystem) placeText(snap engine.Snapshot) {
	if h.font == nil {
		return
	}

	line := StatusLine(snap)
	if line != h.statusLine {
		h.statusLine = line
		h.status.render.Drawable = common.Text{Font: h.font, Text: line}
	}

	h.notice.render.Hidden = !snap.GameOver
	if snap.GameOver {
		vw, vh := h.camera.Viewport()
		width, height, _ := h.font.TextDimensions(noticeText)
		h.notice.space.Position = engo.Point{
			X: float32((vw - float64(width)) / 2),
			Y: float32((vh - float64(height)) / 2),
		}
	}
}

// Remove satisfies the ecs.System interface. HUD entities live for the
// whole scene.
func (h *HUDSystem) Remove(basic ecs.BasicEntity) {}
