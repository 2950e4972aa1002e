// pkg/render/engo/flight.go
package engo

import (
	"image/color"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/maximillianbartolo/BSS/pkg/engine"
	"github.com/maximillianbartolo/BSS/pkg/entity"
	"github.com/maximillianbartolo/BSS/pkg/logging"
	"github.com/maximillianbartolo/BSS/pkg/physics"
)

// Draw order, back to front.
const (
	zStarfield     = 0
	zBody          = 1
	zShip          = 2
	zMinimapPanel  = 10
	zMinimapMarker = 11
	zMinimapShip   = 12
	zHUDText       = 20
	zNotice        = 21
)

// dartColor is the stock hull paint.
var dartColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

// skinTint leaves the alternate skin texture's own colors untouched.
var skinTint = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// bodyVisual couples a celestial body to its render entity.
type bodyVisual struct {
	body   *entity.CelestialBody
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// shipVisual is the player hull's render entity.
type shipVisual struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// FlightSystem drives the simulation from engo's update loop: it polls the
// flight keys, advances the engine by the frame delta, and projects the
// bodies and the ship into window space. It is the only system that mutates
// the simulation; the starfield and HUD read snapshots after it ran.
type FlightSystem struct {
	sim     *engine.Simulation
	sprites *SpriteFactory
	camera  *Camera
	logger  *logging.Logger

	bodies []*bodyVisual
	ship   *shipVisual
}

// NewFlightSystem creates the system. It becomes live once the world calls
// New.
func NewFlightSystem(sim *engine.Simulation, sprites *SpriteFactory, camera *Camera, logger *logging.Logger) *FlightSystem {
	return &FlightSystem{
		sim:     sim,
		sprites: sprites,
		camera:  camera,
		logger:  logger.With("component", "flight"),
	}
}

// New creates the render entities for every body and for the ship.
func (f *FlightSystem) New(w *ecs.World) {
	snap := f.sim.Snapshot()

	for _, body := range snap.Bodies {
		v := &bodyVisual{
			body:  body,
			basic: ecs.NewBasic(),
			render: common.RenderComponent{
				Drawable: common.Circle{},
				Color:    DiscTint(body.Color),
				Hidden:   true,
			},
		}
		v.render.SetZIndex(zBody)
		f.bodies = append(f.bodies, v)
	}

	f.ship = &shipVisual{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: Dart(),
			Color:    dartColor,
		},
	}
	f.ship.render.SetZIndex(zShip)

	for _, system := range w.Systems() {
		if render, ok := system.(*common.RenderSystem); ok {
			for _, v := range f.bodies {
				render.Add(&v.basic, &v.render, &v.space)
			}
			render.Add(&f.ship.basic, &f.ship.render, &f.ship.space)
		}
	}

	f.logger.Info("flight visuals created", "bodies", len(f.bodies))
}

// Update runs one frame: input, simulation advance, then reprojection.
func (f *FlightSystem) Update(dt float32) {
	if engo.Input.Button(btnQuit).JustPressed() {
		engo.Exit()
		return
	}
	if engo.Input.Button(btnSkin).JustPressed() {
		f.sim.ToggleSkin()
	}
	if engo.Input.Button(btnRestart).JustPressed() {
		f.sim.Restart()
	}

	f.sim.SetControls(PollControls())
	f.sim.Advance(time.Duration(float64(dt) * float64(time.Second)))

	snap := f.sim.Snapshot()
	f.camera.Refresh()
	proj := f.camera.Projector(snap.Ship.Position, snap.Zoom)

	for _, v := range f.bodies {
		f.placeBody(v, proj, snap.Zoom)
	}
	f.placeShip(snap)
}

// placeBody projects one body into window space, hiding it when it lies
// entirely off screen and swapping in the disc for its current size.
func (f *FlightSystem) placeBody(v *bodyVisual, proj physics.Projector, zoom float64) {
	screen := proj.ToScreen(v.body.PositionWorld())
	radiusPx := BodyScreenRadius(v.body, zoom)

	if f.camera.Offscreen(screen, radiusPx) {
		v.render.Hidden = true
		return
	}
	v.render.Hidden = false

	drawable, sizePx := f.sprites.BodyDisc(v.body.Name, zoom, radiusPx)
	v.render.Drawable = drawable
	v.space.Width = sizePx
	v.space.Height = sizePx
	v.space.Position = engo.Point{
		X: float32(screen.X) - sizePx/2,
		Y: float32(screen.Y) - sizePx/2,
	}
}

// placeShip sizes, rotates, and centers the hull. The projector always maps
// the ship to the window center, so only the size and heading change per
// frame. The hull scales with the camera zoom.
func (f *FlightSystem) placeShip(snap engine.Snapshot) {
	drawable := common.Drawable(Dart())
	tint := dartColor
	base := dartSizePx

	if snap.Ship.Skin == entity.SkinAlternate {
		if tex, ok := f.sprites.ShipSkin(); ok {
			drawable = tex
			tint = skinTint
			base = skinSizePx
		}
	}

	size := float32(base * snap.Zoom)
	f.ship.render.Drawable = drawable
	f.ship.render.Color = tint
	f.ship.space.Width = size
	f.ship.space.Height = size
	f.ship.space.Rotation = float32(snap.Ship.Angle)

	w, h := f.camera.Viewport()
	f.ship.space.SetCenter(engo.Point{X: float32(w / 2), Y: float32(h / 2)})
}

// Remove drops a visual from the system.
func (f *FlightSystem) Remove(basic ecs.BasicEntity) {
	for i, v := range f.bodies {
		if v.basic.ID() == basic.ID() {
			f.bodies = append(f.bodies[:i], f.bodies[i+1:]...)
			return
		}
	}
}
