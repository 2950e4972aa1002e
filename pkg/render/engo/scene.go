// pkg/render/engo/scene.go

// Package engo renders the simulator in a desktop window using the Engo
// game engine. The scene owns three systems that run in order each frame:
// the flight system advances the simulation and projects the world, the
// starfield scrolls the parallax background, and the HUD pins the readout
// and minimap on top.
package engo

import (
	"fmt"
	"image/color"
	"os"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/maximillianbartolo/BSS/pkg/config"
	"github.com/maximillianbartolo/BSS/pkg/engine"
	"github.com/maximillianbartolo/BSS/pkg/event"
	"github.com/maximillianbartolo/BSS/pkg/logging"
	"github.com/maximillianbartolo/BSS/pkg/resource"
)

// FlightScene is the single scene of the simulator: the ship's orbital
// neighborhood with the starfield behind it and the HUD on top.
type FlightScene struct {
	sim      *engine.Simulation
	cfg      *config.SimConfig
	eventBus *event.Bus
	assets   *resource.Store
	logger   *logging.Logger

	font    *common.Font
	blipOK  bool
	skinSub *event.Subscription
}

// NewFlightScene wires the scene to an already constructed simulation.
func NewFlightScene(sim *engine.Simulation, cfg *config.SimConfig, bus *event.Bus, assets *resource.Store, logger *logging.Logger) *FlightScene {
	return &FlightScene{
		sim:      sim,
		cfg:      cfg,
		eventBus: bus,
		assets:   assets,
		logger:   logger.With("component", "scene"),
	}
}

// Type identifies the scene to engo.
func (scene *FlightScene) Type() string {
	return "FlightScene"
}

// Preload pulls in the optional assets. Every one of them may be missing;
// the scene falls back to procedural art, no text overlays, or silence
// rather than failing.
func (scene *FlightScene) Preload() {
	if _, err := scene.assets.LoadImage(assetShipSkin); err != nil {
		scene.logger.Warn("alternate skin unavailable, keeping the dart",
			"asset", assetShipSkin, "error", err)
	}

	scene.blipOK = scene.preload(assetToggleBlip)

	if scene.preload(assetHUDFont) {
		font := &common.Font{URL: assetHUDFont, FG: hudTextColor, Size: hudFontSize}
		if err := font.CreatePreloaded(); err != nil {
			scene.logger.Warn("HUD font unusable, skipping text overlays",
				"asset", assetHUDFont, "error", err)
		} else {
			scene.font = font
		}
	}
}

// preload feeds one asset file through engo's loader, reporting success.
func (scene *FlightScene) preload(name string) bool {
	f, err := os.Open(scene.assets.Path(name))
	if err != nil {
		scene.logger.Warn("optional asset missing", "asset", name, "error", err)
		return false
	}
	defer f.Close()

	if err := engo.Files.LoadReaderData(name, f); err != nil {
		scene.logger.Warn("failed to load asset", "asset", name, "error", err)
		return false
	}
	scene.logger.Info("asset loaded", "asset", name)
	return true
}

// Setup builds the world: engo's render and audio systems first, then the
// flight systems in back-to-front update order.
func (scene *FlightScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		scene.logger.Error("unexpected updater type", nil)
		engo.Exit()
		return
	}

	common.SetBackground(color.Black)
	world.AddSystem(&common.RenderSystem{})
	world.AddSystem(&common.AudioSystem{})

	RegisterFlightBindings()

	camera := NewCamera()
	sprites := NewSpriteFactory(resource.NewSpriteCache(0), scene.assets, scene.logger)

	world.AddSystem(NewFlightSystem(scene.sim, sprites, camera, scene.logger))
	world.AddSystem(NewStarfieldSystem(scene.sim, scene.cfg.StarCount))
	world.AddSystem(NewHUDSystem(scene.sim, camera, scene.font, scene.logger))

	scene.wireBlip(world)

	scene.logger.Info("flight scene ready",
		"stars", scene.cfg.StarCount,
		"hud_text", scene.font != nil,
		"blip", scene.blipOK,
	)
}

// wireBlip connects the skin-toggle event to the blip sound effect.
func (scene *FlightScene) wireBlip(world *ecs.World) {
	if !scene.blipOK {
		return
	}

	player, err := common.LoadedPlayer(assetToggleBlip)
	if err != nil {
		scene.logger.Warn("failed to prepare blip player",
			"asset", assetToggleBlip, "error", err)
		return
	}
	player.SetVolume(scene.assets.EffectiveVolume(blipVolume))

	basic := ecs.NewBasic()
	for _, system := range world.Systems() {
		if audio, ok := system.(*common.AudioSystem); ok {
			audio.Add(&basic, &common.AudioComponent{Player: player})
		}
	}

	scene.skinSub = scene.eventBus.Subscribe(event.SkinToggled, func(event.Event) {
		player.Rewind()
		player.Play()
	})
}

// Exit runs when the window closes.
func (scene *FlightScene) Exit() {
	if scene.skinSub != nil {
		scene.skinSub.Cancel()
	}
	scene.logger.Info("flight scene closed", "tick", scene.sim.Tick())
}

// Run opens the simulator window and blocks until the player quits. engo
// reports display initialization failures by panicking, so those surface
// here as an error instead of crashing the process.
func Run(cfg *config.SimConfig, sim *engine.Simulation, bus *event.Bus, assets *resource.Store, logger *logging.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engo renderer failed: %v", r)
		}
	}()

	opts := engo.RunOptions{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Fullscreen:   cfg.Window.Fullscreen,
		FPSLimit:     cfg.Window.FPSLimit,
		VSync:        true,
		NotResizable: true,
	}

	engo.Run(opts, NewFlightScene(sim, cfg, bus, assets, logger))
	return nil
}
