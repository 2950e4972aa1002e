// cmd/bss/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/maximillianbartolo/BSS/pkg/config"
	"github.com/maximillianbartolo/BSS/pkg/engine"
	"github.com/maximillianbartolo/BSS/pkg/event"
	"github.com/maximillianbartolo/BSS/pkg/logging"
	"github.com/maximillianbartolo/BSS/pkg/render"
	"github.com/maximillianbartolo/BSS/pkg/render/console"
	engorender "github.com/maximillianbartolo/BSS/pkg/render/engo"
	"github.com/maximillianbartolo/BSS/pkg/resource"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON configuration file")
	rendererName := flag.String("renderer", "", "Renderer: 'engo', 'console', or 'null'")
	ticks := flag.Int("ticks", 0, "With the null renderer, step this many ticks and exit")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	assetDir := flag.String("assets", "assets", "Directory holding the optional image, sound, and font assets")
	flag.Parse()

	env, err := config.LoadConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid environment configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags win over environment variables.
	if *logLevel == "" {
		*logLevel = env.LogLevel
	}
	if *rendererName == "" {
		*rendererName = env.Renderer
	}
	if *configPath == "" {
		*configPath = env.ConfigPath
	}

	logger := logging.NewLoggerAt(logging.ParseLevel(*logLevel))

	cfg, err := loadConfig(*configPath, logger)
	if err != nil {
		logger.Error("failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}
	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		logger.Error("failed to apply environment configuration", err)
		os.Exit(1)
	}

	bus := event.NewEventBus()
	sim, err := engine.NewSimulation(cfg, bus, logger)
	if err != nil {
		logger.Error("failed to build simulation", err)
		os.Exit(1)
	}

	assets := resource.NewStore(*assetDir, cfg.Audio.MasterVolume, logger)
	assets.SetMuted(cfg.Audio.Muted)

	logger.Info("starting space simulator",
		"renderer", *rendererName,
		"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"tick_rate", cfg.TickRate,
		"bodies", len(cfg.Bodies),
	)

	switch *rendererName {
	case "console":
		runConsole(sim, logger)
	case "null":
		runHeadless(sim, cfg, *ticks, logger)
	case "engo":
		runWindowed(cfg, sim, bus, assets, logger)
	default:
		logger.Error("unknown renderer", nil, "renderer", *rendererName)
		os.Exit(1)
	}
}

// loadConfig reads the JSON config, falling back to the built-in defaults
// when no path is given or the file does not exist.
func loadConfig(path string, logger *logging.Logger) (*config.SimConfig, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("configuration file not found, using defaults", "config_path", path)
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

// runWindowed opens the engo window and blocks until it closes. A display
// that cannot initialize is a startup failure.
func runWindowed(cfg *config.SimConfig, sim *engine.Simulation, bus *event.Bus, assets *resource.Store, logger *logging.Logger) {
	if err := engorender.Run(cfg, sim, bus, assets, logger); err != nil {
		logger.Error("display initialization failed", err)
		os.Exit(1)
	}
	logger.Info("window closed", "tick", sim.Tick())
}

// runConsole drives the terminal flight console until the player quits or
// the process is interrupted.
func runConsole(sim *engine.Simulation, logger *logging.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := console.Run(ctx, sim, logger); err != nil {
		logger.Error("console renderer failed", err)
		os.Exit(1)
	}
}

// runHeadless drives the simulation without a display: a fixed number of
// ticks when -ticks is set, otherwise free-running at the configured frame
// rate until interrupted. The final telemetry goes to stdout.
func runHeadless(sim *engine.Simulation, cfg *config.SimConfig, ticks int, logger *logging.Logger) {
	if ticks > 0 {
		for i := 0; i < ticks; i++ {
			sim.Step()
		}
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		err := sim.Run(ctx, render.NewNullRenderer(), cfg.Window.FPSLimit)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("headless run failed", err)
			os.Exit(1)
		}
	}

	snap := sim.Snapshot()
	fmt.Printf("tick=%d pos=(%.3f, %.3f) speed=%.3f km/s zoom=%.2f state=%s\n",
		snap.Tick, snap.Ship.Position.X, snap.Ship.Position.Y,
		snap.SpeedKmS, snap.Zoom, snap.Ship.State)
}
