// pkg/physics/worldspace.go
package physics

import "math"

// World-space constants. Positions of celestial bodies are stored in meters;
// the ship flies in world units so that interplanetary distances stay inside
// comfortable float64 territory on screen.
const (
	// WorldScale is meters per world unit.
	WorldScale = 100000.0

	// G is the gravitational constant scaled up by a factor of ten
	// (6.6743e-11 * 10). The simulation is tuned around this value;
	// changing it detunes the stock orbits.
	G = 6.6743e-10

	// TimeStep is the per-tick impulse scale applied to gravitational
	// acceleration, in seconds. Together with the kick-then-drift update
	// order it makes one tick equivalent to sqrt(TimeStep) = 10 s of
	// simulated time.
	TimeStep = 100.0
)

// MetersToWorld converts a length in meters to world units.
func MetersToWorld(m float64) float64 {
	return m / WorldScale
}

// WorldToMeters converts a length in world units to meters.
func WorldToMeters(w float64) float64 {
	return w * WorldScale
}

// Projector maps world-unit coordinates to screen pixels and back. Center is
// the world point that lands in the middle of the viewport; Zoom is pixels
// per world unit.
type Projector struct {
	Center Vector2D
	Zoom   float64
	HalfW  float64
	HalfH  float64
}

// NewProjector builds a projector for a viewport of the given pixel size.
func NewProjector(center Vector2D, zoom, width, height float64) Projector {
	return Projector{
		Center: center,
		Zoom:   zoom,
		HalfW:  width / 2,
		HalfH:  height / 2,
	}
}

// ToScreen projects a world-unit point into screen pixels.
func (p Projector) ToScreen(world Vector2D) Vector2D {
	return Vector2D{
		X: (world.X-p.Center.X)*p.Zoom + p.HalfW,
		Y: (world.Y-p.Center.Y)*p.Zoom + p.HalfH,
	}
}

// ToWorld is the exact inverse of ToScreen.
func (p Projector) ToWorld(screen Vector2D) Vector2D {
	return Vector2D{
		X: (screen.X-p.HalfW)/p.Zoom + p.Center.X,
		Y: (screen.Y-p.HalfH)/p.Zoom + p.Center.Y,
	}
}

// MinimapMarkerRadius sizes a body's minimap dot from its mass: three pixels
// minimum, one more per decade of mass above 1e20 kg. Purely cosmetic.
func MinimapMarkerRadius(mass float64) int {
	r := int(math.Floor(math.Log10(mass) - 20))
	if r < 3 {
		return 3
	}
	return r
}
