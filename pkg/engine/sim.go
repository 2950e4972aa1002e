// pkg/engine/sim.go
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/maximillianbartolo/BSS/pkg/config"
	"github.com/maximillianbartolo/BSS/pkg/entity"
	"github.com/maximillianbartolo/BSS/pkg/event"
	"github.com/maximillianbartolo/BSS/pkg/logging"
)

// maxFrameDebt caps how much wall time Advance may owe the integrator. A
// stalled renderer costs slow motion instead of a burst of catch-up ticks.
const maxFrameDebt = 250 * time.Millisecond

// ControlState carries the held player intents for the coming ticks. The
// renderer polls its input device every frame and hands the whole set over;
// each intent fires once per simulation tick for as long as it stays set.
type ControlState struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	RCSLeft     bool
	RCSRight    bool
	RCSUp       bool
	RCSDown     bool
	ZoomIn      bool
	ZoomOut     bool
}

// Simulation owns the complete flight state: the bodies, the ship, the
// camera zoom, and the fixed-rate integrator that advances them. All
// mutation happens under the write lock; renderers read through Snapshot.
type Simulation struct {
	config   *config.SimConfig
	bodies   []*entity.CelestialBody
	ship     *entity.Ship
	zoom     float64
	tick     uint64
	controls ControlState

	stepSize    time.Duration
	accumulator time.Duration

	// Events raised during a locked section are queued here and published
	// after the lock drops, so handlers are free to take snapshots.
	pending []event.Event

	eventBus *event.Bus
	logger   *logging.Logger
	mu       sync.RWMutex
}

// Snapshot is a read-only copy of the simulation state at one instant.
// The Ship field is a value copy; Bodies are shared but immutable.
type Snapshot struct {
	Tick     uint64
	Ship     entity.Ship
	Zoom     float64
	SpeedKmS float64
	Bodies   []*entity.CelestialBody
	GameOver bool
}

// HUD projects the snapshot onto the overlay data renderers draw.
func (snap Snapshot) HUD() entity.HUDState {
	return entity.HUDState{
		Tick:     snap.Tick,
		SpeedKmS: snap.SpeedKmS,
		Zoom:     snap.Zoom,
		State:    snap.Ship.State,
		Skin:     snap.Ship.Skin,
	}
}

// NewSimulation builds the body list and the ship from the configuration
// and places the ship on its starting orbit. The configuration should have
// passed Validate; errors here cover what validation cannot see.
func NewSimulation(cfg *config.SimConfig, bus *event.Bus, logger *logging.Logger) (*Simulation, error) {
	bodies := make([]*entity.CelestialBody, 0, len(cfg.Bodies))
	var primary *entity.CelestialBody

	for _, bc := range cfg.Bodies {
		rgba, err := bc.RGBA()
		if err != nil {
			return nil, fmt.Errorf("failed to build body %s: %w", bc.Name, err)
		}
		body := entity.NewCelestialBody(bc.Name, bc.PositionM(), bc.Mass, bc.Radius, rgba)
		bodies = append(bodies, body)
		if bc.Name == cfg.Primary {
			primary = body
		}
	}
	if primary == nil {
		return nil, fmt.Errorf("primary body %q not present in body list", cfg.Primary)
	}

	ship := entity.NewShip(primary, entity.ShipTuning{
		Mass:        cfg.Ship.Mass,
		MainThrust:  cfg.Ship.MainThrust,
		RCSThrust:   cfg.Ship.RCSThrust,
		RotateSpeed: cfg.Ship.RotateSpeed,
		AltitudeM:   cfg.Ship.AltitudeM,
	})

	sim := &Simulation{
		config:   cfg,
		bodies:   bodies,
		ship:     ship,
		zoom:     1.0,
		stepSize: time.Second / time.Duration(cfg.TickRate),
		eventBus: bus,
		logger:   logger,
	}

	logger.Info("simulation initialized",
		"bodies", len(bodies),
		"primary", cfg.Primary,
		"tick_rate", cfg.TickRate,
	)

	return sim, nil
}

// SetControls replaces the held intent set. Renderers call this once per
// frame with the current state of their input device.
func (s *Simulation) SetControls(controls ControlState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controls = controls
}

// Advance feeds elapsed wall time into the fixed-rate integrator and runs
// as many ticks as have come due. Render rate and physics rate stay
// independent this way; a 30 FPS frame simply runs two ticks.
func (s *Simulation) Advance(elapsed time.Duration) {
	s.mu.Lock()
	if elapsed > 0 {
		s.accumulator += elapsed
	}
	if s.accumulator > maxFrameDebt {
		s.accumulator = maxFrameDebt
	}
	for s.accumulator >= s.stepSize {
		s.accumulator -= s.stepSize
		s.stepLocked()
	}
	pending := s.takePendingLocked()
	s.mu.Unlock()

	s.publish(pending)
}

// Step runs exactly one simulation tick regardless of wall time. Headless
// drivers use it for deterministic runs.
func (s *Simulation) Step() {
	s.mu.Lock()
	s.stepLocked()
	pending := s.takePendingLocked()
	s.mu.Unlock()

	s.publish(pending)
}

// stepLocked is one tick: held intents, then gravity and drift, then the
// collision check. Callers hold the write lock.
func (s *Simulation) stepLocked() {
	s.applyControlsLocked()

	s.ship.Update(s.bodies)

	if s.ship.State == entity.StateFlying {
		if hit := s.ship.CheckBodyCollision(s.bodies); hit != nil {
			s.ship.Destroy()
			s.logger.Info("ship destroyed", "body", hit.Name, "tick", s.tick)
			s.pending = append(s.pending, event.NewDestroyedEvent(s, hit.Name, s.tick))
		}
	}

	s.tick++
}

// applyControlsLocked turns the held intent set into ship and camera
// changes for this tick. The ship gates its own calls on the flying state;
// zoom works in any state.
func (s *Simulation) applyControlsLocked() {
	c := s.controls

	if c.RotateLeft {
		s.ship.Rotate(-s.ship.RotateSpeed)
	}
	if c.RotateRight {
		s.ship.Rotate(s.ship.RotateSpeed)
	}
	if c.Thrust {
		s.ship.MoveForward()
	}
	if c.RCSLeft {
		s.ship.ApplyRCS(-1, 0)
	}
	if c.RCSRight {
		s.ship.ApplyRCS(1, 0)
	}
	if c.RCSUp {
		s.ship.ApplyRCS(0, -1)
	}
	if c.RCSDown {
		s.ship.ApplyRCS(0, 1)
	}
	if c.ZoomIn {
		s.setZoomLocked(s.zoom * s.config.Zoom.Factor)
	}
	if c.ZoomOut {
		s.setZoomLocked(s.zoom / s.config.Zoom.Factor)
	}
}

// setZoomLocked clamps the camera zoom into the configured range.
func (s *Simulation) setZoomLocked(zoom float64) {
	if zoom < s.config.Zoom.Min {
		zoom = s.config.Zoom.Min
	}
	if zoom > s.config.Zoom.Max {
		zoom = s.config.Zoom.Max
	}
	s.zoom = zoom
}

// ToggleSkin flips the ship's cosmetic skin and announces the change.
func (s *Simulation) ToggleSkin() {
	s.mu.Lock()
	s.ship.ToggleSkin()
	skin := s.ship.Skin
	s.mu.Unlock()

	s.eventBus.Publish(event.NewSkinEvent(s, int(skin)))
}

// Restart returns the ship to its starting orbit and the camera to zoom 1.
// It is honored only after a crash; restarting mid-flight reports false.
func (s *Simulation) Restart() bool {
	s.mu.Lock()
	if s.ship.State != entity.StateDestroyed {
		s.mu.Unlock()
		return false
	}
	s.ship.Reset()
	s.zoom = 1.0
	tick := s.tick
	s.mu.Unlock()

	s.logger.Info("simulation restarted", "tick", tick)
	s.eventBus.Publish(event.NewRestartEvent(s, tick))
	return true
}

// Snapshot returns a consistent copy of the current state for rendering.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bodies := make([]*entity.CelestialBody, len(s.bodies))
	copy(bodies, s.bodies)

	return Snapshot{
		Tick:     s.tick,
		Ship:     *s.ship,
		Zoom:     s.zoom,
		SpeedKmS: s.ship.SpeedKmS(),
		Bodies:   bodies,
		GameOver: s.ship.State == entity.StateDestroyed,
	}
}

// Tick returns the number of completed simulation ticks.
func (s *Simulation) Tick() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}

// Zoom returns the current camera zoom.
func (s *Simulation) Zoom() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.zoom
}

// takePendingLocked hands out the queued events and clears the queue.
func (s *Simulation) takePendingLocked() []event.Event {
	pending := s.pending
	s.pending = nil
	return pending
}

// publish delivers queued events outside the lock.
func (s *Simulation) publish(events []event.Event) {
	for _, e := range events {
		s.eventBus.Publish(e)
	}
}

// Run drives the simulation with a frame ticker until the context ends,
// rendering a frame after each advance. The Engo and Bubble Tea front ends
// bring their own loops; this one serves headless runs and tests.
func (s *Simulation) Run(ctx context.Context, renderer entity.Renderer, fps int) error {
	if fps <= 0 {
		fps = s.config.Window.FPSLimit
	}
	if fps <= 0 {
		fps = 60
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	s.logger.Info("simulation loop started", "fps", fps)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("simulation loop stopped", "tick", s.Tick())
			return ctx.Err()
		case now := <-ticker.C:
			s.Advance(now.Sub(last))
			last = now
			s.RenderFrame(renderer)
		}
	}
}

// RenderFrame draws one frame from a fresh snapshot: bodies first, the
// ship on top, then the HUD overlay.
func (s *Simulation) RenderFrame(renderer entity.Renderer) {
	snap := s.Snapshot()

	renderer.Clear()
	for _, body := range snap.Bodies {
		renderer.RenderBody(body)
	}
	renderer.RenderShip(&snap.Ship)
	renderer.RenderHUD(snap.HUD())
	renderer.Present()
}
