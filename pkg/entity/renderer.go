// pkg/entity/renderer.go
package entity

// HUDState is the per-frame overlay data handed to a renderer.
type HUDState struct {
	Tick     uint64
	SpeedKmS float64
	Zoom     float64
	State    ShipState
	Skin     ShipSkin
}

// Renderer draws one frame of the simulation. Implementations receive the
// entities in world coordinates and decide themselves how to project them.
type Renderer interface {
	Clear()
	RenderBody(body *CelestialBody)
	RenderShip(ship *Ship)
	RenderHUD(hud HUDState)
	Present()
}
