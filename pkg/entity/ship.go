// pkg/entity/ship.go
package entity

import (
	"math"

	"github.com/maximillianbartolo/BSS/pkg/physics"
)

// ShipState tracks whether the ship is flying or has hit a body.
type ShipState int

const (
	StateFlying ShipState = iota
	StateDestroyed
)

// String returns a human-readable state name.
func (s ShipState) String() string {
	switch s {
	case StateFlying:
		return "flying"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// ShipSkin selects the cosmetic hull paint. Physics never reads it.
type ShipSkin int

const (
	SkinDefault ShipSkin = iota
	SkinAlternate
)

// String returns a human-readable skin name.
func (s ShipSkin) String() string {
	switch s {
	case SkinDefault:
		return "default"
	case SkinAlternate:
		return "alternate"
	default:
		return "unknown"
	}
}

// ShipTuning contains the handling parameters for a spacecraft.
type ShipTuning struct {
	Mass        float64 // kilograms
	MainThrust  float64 // velocity change per tick, world units
	RCSThrust   float64 // velocity change per tick, world units
	RotateSpeed float64 // degrees per tick
	AltitudeM   float64 // starting orbit altitude above the primary, meters
}

// DefaultTuning returns the stock spacecraft parameters: a one-tonne hull
// starting from a 400 km circular orbit.
func DefaultTuning() ShipTuning {
	return ShipTuning{
		Mass:        1000,
		MainThrust:  0.1,
		RCSThrust:   0.05,
		RotateSpeed: 5,
		AltitudeM:   400e3,
	}
}

// Ship is the single player-controlled spacecraft. Position is kept in world
// units and Velocity in world units per tick; Angle is degrees in [0, 360)
// with 0 pointing up the screen and positive angles turning clockwise.
type Ship struct {
	Position    physics.Vector2D
	Velocity    physics.Vector2D
	Angle       float64
	Mass        float64
	MainThrust  float64
	RCSThrust   float64
	RotateSpeed float64
	State       ShipState
	Skin        ShipSkin

	primary   *CelestialBody
	altitudeM float64
}

// NewShip creates a ship on a circular orbit around the primary body,
// placed 45 degrees around from the primary's +x axis and heading prograde.
func NewShip(primary *CelestialBody, tuning ShipTuning) *Ship {
	ship := &Ship{
		Mass:        tuning.Mass,
		MainThrust:  tuning.MainThrust,
		RCSThrust:   tuning.RCSThrust,
		RotateSpeed: tuning.RotateSpeed,
		primary:     primary,
		altitudeM:   tuning.AltitudeM,
	}
	ship.Reset()
	return ship
}

// Primary returns the body the ship starts in orbit around.
func (s *Ship) Primary() *CelestialBody {
	return s.primary
}

// Reset puts the ship back on its starting orbit and clears state and skin.
func (s *Ship) Reset() {
	R := s.primary.Radius + s.altitudeM
	theta := math.Pi / 4

	radial := physics.Vector2D{X: math.Cos(theta), Y: math.Sin(theta)}
	tangent := physics.Vector2D{X: math.Sin(theta), Y: -math.Cos(theta)}

	s.Position = s.primary.PositionWorld().Add(radial.Scale(R / physics.WorldScale))

	// Circular orbit speed converted to the integrator's velocity unit.
	// One tick advances sqrt(TimeStep) seconds of real time, so the
	// conversion from m/s to world units per tick carries the same factor.
	u := math.Sqrt(physics.G*s.primary.Mass*physics.TimeStep/R) / physics.WorldScale

	// The integrator kicks velocity before each drift. Offsetting the
	// stored velocity by half a kick outward staggers it half a tick
	// against the gravity updates, which keeps the orbit closed instead
	// of slowly spiraling.
	gw := physics.G * s.primary.Mass / (R * R) * physics.TimeStep / physics.WorldScale

	s.Velocity = tangent.Scale(u).Add(radial.Scale(gw / 2))
	s.Angle = 45
	s.Skin = SkinDefault
	s.State = StateFlying
}

// Forward returns the unit vector the ship's nose points along.
func (s *Ship) Forward() physics.Vector2D {
	rad := s.Angle * math.Pi / 180
	return physics.FromAngle(rad-math.Pi/2, 1)
}

// Rotate turns the ship by deltaDeg degrees, positive clockwise. The angle
// wraps into [0, 360). Destroyed ships do not turn.
func (s *Ship) Rotate(deltaDeg float64) {
	if s.State != StateFlying {
		return
	}
	s.Angle = math.Mod(s.Angle+deltaDeg, 360)
	if s.Angle < 0 {
		s.Angle += 360
	}
}

// MoveForward burns the main engine for one tick, adding MainThrust along
// the current heading.
func (s *Ship) MoveForward() {
	if s.State != StateFlying {
		return
	}
	s.Velocity = s.Velocity.Add(s.Forward().Scale(s.MainThrust))
}

// ApplyRCS fires the reaction control thrusters for one tick. The (dx, dy)
// direction is given in the ship's body frame, so dy = -1 pushes along the
// nose and dx = 1 pushes to starboard regardless of heading.
func (s *Ship) ApplyRCS(dx, dy float64) {
	if s.State != StateFlying {
		return
	}
	rad := s.Angle * math.Pi / 180
	impulse := physics.Vector2D{X: dx, Y: dy}.Rotate(rad).Scale(s.RCSThrust)
	s.Velocity = s.Velocity.Add(impulse)
}

// Update advances the ship one tick: every body kicks the velocity, then the
// position drifts by the new velocity. Destroyed ships stay frozen where
// they hit.
func (s *Ship) Update(bodies []*CelestialBody) {
	if s.State != StateFlying {
		return
	}
	for _, body := range bodies {
		body.ApplyGravityTo(s)
	}
	s.Position = s.Position.Add(s.Velocity)
}

// CheckBodyCollision returns the first body whose surface the ship is
// inside, or nil while the ship remains in open space.
func (s *Ship) CheckBodyCollision(bodies []*CelestialBody) *CelestialBody {
	posM := s.Position.Scale(physics.WorldScale)
	for _, body := range bodies {
		if body.Contains(posM) {
			return body
		}
	}
	return nil
}

// Destroy marks the ship as lost. Further physics and control calls become
// no-ops until Reset.
func (s *Ship) Destroy() {
	s.State = StateDestroyed
}

// ToggleSkin flips between the two hull paints. Works in any state.
func (s *Ship) ToggleSkin() {
	if s.Skin == SkinDefault {
		s.Skin = SkinAlternate
	} else {
		s.Skin = SkinDefault
	}
}

// SpeedKmS returns the ship's displayed speed in kilometers per second.
func (s *Ship) SpeedKmS() float64 {
	return s.Velocity.Length() * physics.WorldScale / 1000
}
