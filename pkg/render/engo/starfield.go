// pkg/render/engo/starfield.go
package engo

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/maximillianbartolo/BSS/pkg/engine"
	"github.com/maximillianbartolo/BSS/pkg/physics"
)

// Starfield tuning. Brightness doubles as depth: brighter stars track the
// ship harder and read as nearer.
const (
	minStarBrightness = 100
	brightStarCutoff  = 230
	starParallax      = 0.1
)

// star is one background star anchored to a fixed point in the window tile.
type star struct {
	anchor     physics.Vector2D // pixels within the tile
	brightness uint8
}

// parallaxFactor is how strongly the star follows the ship.
func (s star) parallaxFactor() float64 {
	return starParallax * float64(s.brightness) / 255
}

// radiusPx is the star's drawn radius. Bright stars get two pixels.
func (s star) radiusPx() float64 {
	if s.brightness >= brightStarCutoff {
		return 2
	}
	return 1
}

// screenPos shifts the star's anchor against the ship position and wraps it
// around the tile, so the field scrolls forever without edges. Go's Mod
// keeps the dividend's sign, hence the correction for negative offsets.
func (s star) screenPos(ship physics.Vector2D, w, h float64) physics.Vector2D {
	factor := s.parallaxFactor()

	x := math.Mod(s.anchor.X-ship.X*factor, w)
	if x < 0 {
		x += w
	}
	y := math.Mod(s.anchor.Y-ship.Y*factor, h)
	if y < 0 {
		y += h
	}
	return physics.Vector2D{X: x, Y: y}
}

// generateStars scatters count stars over a w by h pixel tile.
func generateStars(count int, w, h float64, rng *rand.Rand) []star {
	stars := make([]star, count)
	for i := range stars {
		stars[i] = star{
			anchor: physics.Vector2D{
				X: rng.Float64() * w,
				Y: rng.Float64() * h,
			},
			brightness: uint8(minStarBrightness + rng.Intn(256-minStarBrightness)),
		}
	}
	return stars
}

// starVisual couples a star to its render entity.
type starVisual struct {
	star
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// StarfieldSystem owns the parallax starfield behind the flight view.
type StarfieldSystem struct {
	sim   *engine.Simulation
	count int

	width  float64
	height float64
	stars  []*starVisual
}

// NewStarfieldSystem creates the starfield with the configured star count.
func NewStarfieldSystem(sim *engine.Simulation, count int) *StarfieldSystem {
	if count < 0 {
		count = 0
	}
	return &StarfieldSystem{sim: sim, count: count}
}

// New scatters the stars over the window and registers them for rendering.
func (s *StarfieldSystem) New(w *ecs.World) {
	s.width = float64(engo.GameWidth())
	s.height = float64(engo.GameHeight())

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, st := range generateStars(s.count, s.width, s.height, rng) {
		b := st.brightness
		v := &starVisual{
			star:  st,
			basic: ecs.NewBasic(),
			render: common.RenderComponent{
				Drawable: common.Circle{},
				Color:    color.RGBA{R: b, G: b, B: b, A: 255},
			},
			space: common.SpaceComponent{
				Width:  float32(st.radiusPx() * 2),
				Height: float32(st.radiusPx() * 2),
			},
		}
		v.render.SetZIndex(zStarfield)
		s.stars = append(s.stars, v)
	}

	for _, system := range w.Systems() {
		if render, ok := system.(*common.RenderSystem); ok {
			for _, v := range s.stars {
				render.Add(&v.basic, &v.render, &v.space)
			}
		}
	}
}

// Update scrolls the field against the ship's current position.
func (s *StarfieldSystem) Update(dt float32) {
	snap := s.sim.Snapshot()
	for _, v := range s.stars {
		pos := v.screenPos(snap.Ship.Position, s.width, s.height)
		v.space.Position = engo.Point{
			X: float32(pos.X - v.radiusPx()),
			Y: float32(pos.Y - v.radiusPx()),
		}
	}
}

// Remove drops a star from the field.
func (s *StarfieldSystem) Remove(basic ecs.BasicEntity) {
	for i, v := range s.stars {
		if v.basic.ID() == basic.ID() {
			s.stars = append(s.stars[:i], s.stars[i+1:]...)
			return
		}
	}
}
