// pkg/entity/ship_test.go
package entity

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/maximillianbartolo/BSS/pkg/physics"
)

// TestShipState_String tests the String method of ShipState
func TestShipState_String(t *testing.T) {
	tests := []struct {
		name     string
		state    ShipState
		expected string
	}{
		{"Flying", StateFlying, "flying"},
		{"Destroyed", StateDestroyed, "destroyed"},
		{"Unknown", ShipState(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.String(); got != tt.expected {
				t.Errorf("ShipState.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestShipSkin_String tests the String method of ShipSkin
func TestShipSkin_String(t *testing.T) {
	tests := []struct {
		name     string
		skin     ShipSkin
		expected string
	}{
		{"Default", SkinDefault, "default"},
		{"Alternate", SkinAlternate, "alternate"},
		{"Unknown", ShipSkin(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.skin.String(); got != tt.expected {
				t.Errorf("ShipSkin.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestNewShip tests the NewShip constructor function
func TestNewShip(t *testing.T) {
	earth := newTestEarth()
	tuning := DefaultTuning()

	ship := NewShip(earth, tuning)

	if ship.Mass != tuning.Mass {
		t.Errorf("Expected mass %v, got %v", tuning.Mass, ship.Mass)
	}
	if ship.MainThrust != tuning.MainThrust {
		t.Errorf("Expected main thrust %v, got %v", tuning.MainThrust, ship.MainThrust)
	}
	if ship.RCSThrust != tuning.RCSThrust {
		t.Errorf("Expected RCS thrust %v, got %v", tuning.RCSThrust, ship.RCSThrust)
	}
	if ship.RotateSpeed != tuning.RotateSpeed {
		t.Errorf("Expected rotate speed %v, got %v", tuning.RotateSpeed, ship.RotateSpeed)
	}
	if ship.Primary() != earth {
		t.Error("Expected the primary body to be retained")
	}
	if ship.State != StateFlying {
		t.Errorf("Expected new ship to be flying, got %v", ship.State)
	}
	if ship.Skin != SkinDefault {
		t.Errorf("Expected default skin, got %v", ship.Skin)
	}
	if ship.Angle != 45 {
		t.Errorf("Expected prograde angle 45, got %v", ship.Angle)
	}

	// Starting position sits on the orbit circle 45 degrees around.
	R := earth.Radius + tuning.AltitudeM
	wantR := R / physics.WorldScale
	gotR := ship.Position.Distance(earth.PositionWorld())
	if !scalar.EqualWithinRel(gotR, wantR, 1e-12) {
		t.Errorf("Start radius = %v world units, want %v", gotR, wantR)
	}
	if !scalar.EqualWithinRel(ship.Position.X, ship.Position.Y, 1e-12) {
		t.Errorf("Start position %v not on the 45 degree radial", ship.Position)
	}

	// Velocity is close to circular speed, plus the small radial stagger.
	u := math.Sqrt(physics.G*earth.Mass*physics.TimeStep/R) / physics.WorldScale
	if got := ship.Velocity.Length(); !scalar.EqualWithinRel(got, u, 0.02) {
		t.Errorf("Start speed = %v world units per tick, want about %v", got, u)
	}
}

// TestNewShip_OffsetPrimary verifies the orbit is centered on the primary
// even when the primary is away from the origin.
func TestNewShip_OffsetPrimary(t *testing.T) {
	moon := newTestMoon()
	ship := NewShip(moon, DefaultTuning())

	R := moon.Radius + DefaultTuning().AltitudeM
	gotR := ship.Position.Distance(moon.PositionWorld())
	if !scalar.EqualWithinRel(gotR, R/physics.WorldScale, 1e-12) {
		t.Errorf("Start radius around offset primary = %v, want %v", gotR, R/physics.WorldScale)
	}
}

// TestShip_Rotate tests heading changes and wrap-around
func TestShip_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		delta    float64
		expected float64
	}{
		{"TurnRight", 45, 5, 50},
		{"TurnLeft", 45, -5, 40},
		{"WrapPositive", 355, 10, 5},
		{"WrapNegative", 10, -20, 350},
		{"FullCircle", 45, 360, 45},
		{"ZeroDelta", 45, 0, 45},
	}

	earth := newTestEarth()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := NewShip(earth, DefaultTuning())
			ship.Angle = tt.start
			ship.Rotate(tt.delta)
			if !scalar.EqualWithinAbs(ship.Angle, tt.expected, 1e-9) {
				t.Errorf("Rotate(%v) from %v = %v, want %v", tt.delta, tt.start, ship.Angle, tt.expected)
			}
		})
	}
}

// TestShip_Forward tests the heading vector for the cardinal directions
func TestShip_Forward(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  physics.Vector2D
	}{
		{"Up", 0, physics.Vector2D{X: 0, Y: -1}},
		{"Right", 90, physics.Vector2D{X: 1, Y: 0}},
		{"Down", 180, physics.Vector2D{X: 0, Y: 1}},
		{"Left", 270, physics.Vector2D{X: -1, Y: 0}},
	}

	earth := newTestEarth()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := NewShip(earth, DefaultTuning())
			ship.Angle = tt.angle
			got := ship.Forward()
			if !scalar.EqualWithinAbs(got.X, tt.want.X, 1e-12) ||
				!scalar.EqualWithinAbs(got.Y, tt.want.Y, 1e-12) {
				t.Errorf("Forward() at %v degrees = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

// TestShip_MoveForward tests the main engine burn along the heading
func TestShip_MoveForward(t *testing.T) {
	earth := newTestEarth()

	t.Run("HeadingUp", func(t *testing.T) {
		ship := NewShip(earth, DefaultTuning())
		ship.Angle = 0
		ship.Velocity = physics.Vector2D{}

		ship.MoveForward()

		if !scalar.EqualWithinAbs(ship.Velocity.X, 0, 1e-12) {
			t.Errorf("Velocity.X = %v, want 0", ship.Velocity.X)
		}
		if !scalar.EqualWithinAbs(ship.Velocity.Y, -ship.MainThrust, 1e-12) {
			t.Errorf("Velocity.Y = %v, want %v", ship.Velocity.Y, -ship.MainThrust)
		}
	})

	t.Run("HeadingRight", func(t *testing.T) {
		ship := NewShip(earth, DefaultTuning())
		ship.Angle = 90
		ship.Velocity = physics.Vector2D{}

		ship.MoveForward()

		if !scalar.EqualWithinAbs(ship.Velocity.X, ship.MainThrust, 1e-12) {
			t.Errorf("Velocity.X = %v, want %v", ship.Velocity.X, ship.MainThrust)
		}
		if !scalar.EqualWithinAbs(ship.Velocity.Y, 0, 1e-12) {
			t.Errorf("Velocity.Y = %v, want 0", ship.Velocity.Y)
		}
	})

	t.Run("BurnsAccumulate", func(t *testing.T) {
		ship := NewShip(earth, DefaultTuning())
		ship.Angle = 90
		ship.Velocity = physics.Vector2D{}

		for i := 0; i < 10; i++ {
			ship.MoveForward()
		}

		if !scalar.EqualWithinAbs(ship.Velocity.X, 10*ship.MainThrust, 1e-10) {
			t.Errorf("Velocity.X after 10 burns = %v, want %v", ship.Velocity.X, 10*ship.MainThrust)
		}
	})
}

// TestShip_ApplyRCS tests translation thrust in the ship's body frame
func TestShip_ApplyRCS(t *testing.T) {
	earth := newTestEarth()

	tests := []struct {
		name   string
		angle  float64
		dx, dy float64
		want   physics.Vector2D
	}{
		{"NoseFirstHeadingUp", 0, 0, -1, physics.Vector2D{X: 0, Y: -0.05}},
		{"NoseFirstHeadingRight", 90, 0, -1, physics.Vector2D{X: 0.05, Y: 0}},
		{"StarboardHeadingUp", 0, 1, 0, physics.Vector2D{X: 0.05, Y: 0}},
		{"StarboardHeadingRight", 90, 1, 0, physics.Vector2D{X: 0, Y: 0.05}},
		{"AftHeadingDown", 180, 0, 1, physics.Vector2D{X: 0, Y: -0.05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := NewShip(earth, DefaultTuning())
			ship.Angle = tt.angle
			ship.Velocity = physics.Vector2D{}

			ship.ApplyRCS(tt.dx, tt.dy)

			if !scalar.EqualWithinAbs(ship.Velocity.X, tt.want.X, 1e-12) ||
				!scalar.EqualWithinAbs(ship.Velocity.Y, tt.want.Y, 1e-12) {
				t.Errorf("ApplyRCS(%v, %v) at %v degrees gave %v, want %v",
					tt.dx, tt.dy, tt.angle, ship.Velocity, tt.want)
			}
		})
	}
}

// TestShip_Update_ClosedOrbit is the orbit regression: left alone on its
// starting orbit, the ship must stay within one percent of the orbit radius
// for several revolutions.
func TestShip_Update_ClosedOrbit(t *testing.T) {
	earth := newTestEarth()
	ship := NewShip(earth, DefaultTuning())
	bodies := []*CelestialBody{earth}

	R := (earth.Radius + DefaultTuning().AltitudeM) / physics.WorldScale

	// About 175 ticks per revolution at 400 km; run a bit over two.
	for tick := 1; tick <= 400; tick++ {
		ship.Update(bodies)

		r := ship.Position.Distance(earth.PositionWorld())
		if math.Abs(r-R)/R > 0.01 {
			t.Fatalf("Orbit radius drifted to %v world units at tick %d, want within 1%% of %v", r, tick, R)
		}
	}

	if ship.State != StateFlying {
		t.Errorf("Ship state after coasting = %v, want flying", ship.State)
	}
}

// TestShip_Update_FallsWithoutTangentialVelocity drops the ship from rest
// and expects it to fall inward.
func TestShip_Update_FallsWithoutTangentialVelocity(t *testing.T) {
	earth := newTestEarth()
	ship := NewShip(earth, DefaultTuning())
	bodies := []*CelestialBody{earth}

	ship.Velocity = physics.Vector2D{}
	startR := ship.Position.Distance(earth.PositionWorld())

	for tick := 0; tick < 8; tick++ {
		ship.Update(bodies)
	}

	endR := ship.Position.Distance(earth.PositionWorld())
	if endR >= startR {
		t.Errorf("Ship at rest did not fall: radius went from %v to %v", startR, endR)
	}
}

// TestShip_CheckBodyCollision tests surface impact detection
func TestShip_CheckBodyCollision(t *testing.T) {
	earth := newTestEarth()
	moon := newTestMoon()
	bodies := []*CelestialBody{earth, moon}

	tests := []struct {
		name      string
		positionM physics.Vector2D
		expected  *CelestialBody
	}{
		{"OnOrbit", physics.Vector2D{X: 6771e3, Y: 0}, nil},
		{"InsideEarth", physics.Vector2D{X: 6000e3, Y: 0}, earth},
		{"InsideMoon", physics.Vector2D{X: 384400e3 + 1000e3, Y: 0}, moon},
		{"DeepSpace", physics.Vector2D{X: 100000e3, Y: 100000e3}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := NewShip(earth, DefaultTuning())
			ship.Position = tt.positionM.Scale(1 / physics.WorldScale)

			if got := ship.CheckBodyCollision(bodies); got != tt.expected {
				t.Errorf("CheckBodyCollision() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestShip_DestroyedIsInert verifies every control and physics entry point
// is a no-op once the ship is destroyed.
func TestShip_DestroyedIsInert(t *testing.T) {
	earth := newTestEarth()
	ship := NewShip(earth, DefaultTuning())
	bodies := []*CelestialBody{earth}

	ship.Destroy()
	if ship.State != StateDestroyed {
		t.Fatalf("Destroy() left state %v", ship.State)
	}

	pos, vel, angle := ship.Position, ship.Velocity, ship.Angle

	ship.Update(bodies)
	ship.MoveForward()
	ship.ApplyRCS(1, -1)
	ship.Rotate(90)

	if ship.Position != pos {
		t.Errorf("Position moved while destroyed: %v -> %v", pos, ship.Position)
	}
	if ship.Velocity != vel {
		t.Errorf("Velocity changed while destroyed: %v -> %v", vel, ship.Velocity)
	}
	if ship.Angle != angle {
		t.Errorf("Angle changed while destroyed: %v -> %v", angle, ship.Angle)
	}
}

// TestShip_ToggleSkin tests the cosmetic flip, including while destroyed
func TestShip_ToggleSkin(t *testing.T) {
	earth := newTestEarth()
	ship := NewShip(earth, DefaultTuning())

	ship.ToggleSkin()
	if ship.Skin != SkinAlternate {
		t.Errorf("First toggle gave %v, want alternate", ship.Skin)
	}
	ship.ToggleSkin()
	if ship.Skin != SkinDefault {
		t.Errorf("Second toggle gave %v, want default", ship.Skin)
	}

	ship.Destroy()
	ship.ToggleSkin()
	if ship.Skin != SkinAlternate {
		t.Errorf("Toggle while destroyed gave %v, want alternate", ship.Skin)
	}
}

// TestShip_Reset verifies a mangled ship comes back exactly as constructed.
func TestShip_Reset(t *testing.T) {
	earth := newTestEarth()
	fresh := NewShip(earth, DefaultTuning())

	ship := NewShip(earth, DefaultTuning())
	bodies := []*CelestialBody{earth}
	for i := 0; i < 50; i++ {
		ship.MoveForward()
		ship.Update(bodies)
	}
	ship.Rotate(33)
	ship.ToggleSkin()
	ship.Destroy()

	ship.Reset()

	if ship.Position != fresh.Position {
		t.Errorf("Reset position = %v, want %v", ship.Position, fresh.Position)
	}
	if ship.Velocity != fresh.Velocity {
		t.Errorf("Reset velocity = %v, want %v", ship.Velocity, fresh.Velocity)
	}
	if ship.Angle != 45 {
		t.Errorf("Reset angle = %v, want 45", ship.Angle)
	}
	if ship.State != StateFlying {
		t.Errorf("Reset state = %v, want flying", ship.State)
	}
	if ship.Skin != SkinDefault {
		t.Errorf("Reset skin = %v, want default", ship.Skin)
	}
}

// TestShip_SpeedKmS tests the HUD speed conversion
func TestShip_SpeedKmS(t *testing.T) {
	earth := newTestEarth()
	ship := NewShip(earth, DefaultTuning())

	ship.Velocity = physics.Vector2D{X: 3, Y: 4}

	// 5 world units per tick is 500 km per tick on the HUD scale.
	if got := ship.SpeedKmS(); !scalar.EqualWithinRel(got, 500, 1e-12) {
		t.Errorf("SpeedKmS() = %v, want 500", got)
	}
}

func BenchmarkShip_Update(b *testing.B) {
	earth := newTestEarth()
	moon := newTestMoon()
	ship := NewShip(earth, DefaultTuning())
	bodies := []*CelestialBody{earth, moon}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ship.Update(bodies)
	}
}
