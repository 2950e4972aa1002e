// pkg/entity/body.go
package entity

import (
	"image/color"

	"github.com/maximillianbartolo/BSS/pkg/physics"
)

// CelestialBody is a fixed gravitational attractor: a star, planet, or moon.
// Bodies never move and never collide with each other; they only pull on the
// ship and end the flight when the ship falls into them. All fields are set
// at construction and read-only afterwards.
type CelestialBody struct {
	Name      string
	PositionM physics.Vector2D // position in meters
	Mass      float64          // kilograms
	Radius    float64          // meters
	Color     color.RGBA
}

// NewCelestialBody creates a body at a fixed position given in meters.
func NewCelestialBody(name string, positionM physics.Vector2D, mass, radius float64, c color.RGBA) *CelestialBody {
	return &CelestialBody{
		Name:      name,
		PositionM: positionM,
		Mass:      mass,
		Radius:    radius,
		Color:     c,
	}
}

// PositionWorld returns the body's position in world units.
func (b *CelestialBody) PositionWorld() physics.Vector2D {
	return b.PositionM.Scale(1 / physics.WorldScale)
}

// RadiusWorld returns the body's radius in world units.
func (b *CelestialBody) RadiusWorld() float64 {
	return b.Radius / physics.WorldScale
}

// BoundsM returns the body's collision disc in meter space.
func (b *CelestialBody) BoundsM() physics.Circle {
	return physics.Circle{Center: b.PositionM, Radius: b.Radius}
}

// Contains reports whether a point given in meters lies inside the body.
func (b *CelestialBody) Contains(pointM physics.Vector2D) bool {
	return b.BoundsM().ContainsPoint(pointM)
}

// ApplyGravityTo accelerates the ship toward the body for one tick. The
// displacement is evaluated in meters, the resulting velocity change in
// world units per tick. A ship inside the body's radius receives no pull;
// the collision check ends the flight instead, and skipping the kick keeps
// the force finite near the center.
func (b *CelestialBody) ApplyGravityTo(ship *Ship) {
	posM := ship.Position.Scale(physics.WorldScale)
	delta := b.PositionM.Sub(posM)
	dist := delta.Length()
	if dist < b.Radius {
		return
	}

	force := physics.G * b.Mass * ship.Mass / (dist * dist)
	acc := delta.Scale(force / ship.Mass / dist)
	ship.Velocity = ship.Velocity.Add(acc.Scale(physics.TimeStep / physics.WorldScale))
}
