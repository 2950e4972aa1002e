// pkg/physics/collision.go
package physics

// Circle is a circular collision shape. The simulation uses it in meter
// space: body collision discs are their physical radii.
type Circle struct {
	Center Vector2D
	Radius float64
}

// ContainsPoint reports whether a point lies strictly inside the circle.
// A point exactly on the rim is outside, matching the gravity integrator's
// inside-radius guard.
func (c Circle) ContainsPoint(p Vector2D) bool {
	return c.Center.Sub(p).LengthSquared() < c.Radius*c.Radius
}
