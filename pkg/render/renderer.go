// pkg/render/renderer.go
package render

import (
	"github.com/maximillianbartolo/BSS/pkg/entity"
	"github.com/maximillianbartolo/BSS/pkg/logging"
)

// NullRenderer is an entity.Renderer that draws nothing. Headless runs and
// engine tests use it when only the physics matter; at debug level it traces
// every call so a silent run can still be inspected.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger().With("component", "null_renderer"),
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug("Clear called")
}

// RenderBody implements entity.Renderer.
func (d *NullRenderer) RenderBody(body *entity.CelestialBody) {
	if body == nil {
		d.logger.Debug("RenderBody called with nil body")
		return
	}
	d.logger.Debug("RenderBody called",
		"name", body.Name,
		"mass", body.Mass,
	)
}

// RenderShip implements entity.Renderer.
func (d *NullRenderer) RenderShip(ship *entity.Ship) {
	if ship == nil {
		d.logger.Debug("RenderShip called with nil ship")
		return
	}
	d.logger.Debug("RenderShip called",
		"x", ship.Position.X,
		"y", ship.Position.Y,
		"angle", ship.Angle,
		"state", ship.State.String(),
	)
}

// RenderHUD implements entity.Renderer.
func (d *NullRenderer) RenderHUD(hud entity.HUDState) {
	d.logger.Debug("RenderHUD called",
		"tick", hud.Tick,
		"speed_km_s", hud.SpeedKmS,
		"zoom", hud.Zoom,
	)
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug("Present called")
}

// NullRendererInstance is a shared instance for callers that just need a
// sink.
var NullRendererInstance entity.Renderer = NewNullRenderer()
