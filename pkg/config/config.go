// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/maximillianbartolo/BSS/pkg/physics"
)

// SimConfig contains the full configuration for a simulation run
type SimConfig struct {
	Window    WindowConfig `json:"window"`
	TickRate  int          `json:"tickRate"`  // physics steps per second
	StarCount int          `json:"starCount"` // background starfield size
	Zoom      ZoomConfig   `json:"zoom"`
	Ship      ShipConfig   `json:"ship"`
	Bodies    []BodyConfig `json:"bodies"`
	Primary   string       `json:"primary"` // body the ship starts in orbit around
	Audio     AudioConfig  `json:"audio"`
}

// WindowConfig contains display configuration
type WindowConfig struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Title      string `json:"title"`
	FPSLimit   int    `json:"fpsLimit"`
	Fullscreen bool   `json:"fullscreen"`
}

// ZoomConfig bounds the camera zoom and sets the per-tick zoom step
type ZoomConfig struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Factor float64 `json:"factor"` // multiplier applied per tick while zooming
}

// ShipConfig contains spacecraft tuning
type ShipConfig struct {
	Mass        float64 `json:"mass"`        // kg
	MainThrust  float64 `json:"mainThrust"`  // world units/tick per thrust tick
	RCSThrust   float64 `json:"rcsThrust"`   // world units/tick per RCS tick
	RotateSpeed float64 `json:"rotateSpeed"` // degrees per tick
	AltitudeM   float64 `json:"altitude"`    // initial orbit altitude above the primary, meters
}

// BodyConfig describes one celestial body. Positions are meters.
type BodyConfig struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Mass   float64 `json:"mass"`   // kg
	Radius float64 `json:"radius"` // meters
	Color  string  `json:"color"`  // hex, e.g. "#6495ED"
}

// AudioConfig contains sound-effect settings
type AudioConfig struct {
	MasterVolume float64 `json:"masterVolume"` // [0,1]
	Muted        bool    `json:"muted"`
}

// ValidationError reports a configuration field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config field %s: %s", e.Field, e.Message)
}

// ParseHexColor converts a "#RRGGBB" string to an opaque color.RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// RGBA parses the body's configured hex color.
func (b BodyConfig) RGBA() (color.RGBA, error) {
	return ParseHexColor(b.Color)
}

// PositionM returns the body's configured position as a vector in meters.
func (b BodyConfig) PositionM() physics.Vector2D {
	return physics.Vector2D{X: b.X, Y: b.Y}
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SimConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SimConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the simulation cannot run
// with. It returns a *ValidationError naming the first offending field.
func (c *SimConfig) Validate() error {
	if c.Window.Width < 320 || c.Window.Width > 7680 {
		return &ValidationError{Field: "Window.Width", Message: "must be between 320 and 7680"}
	}
	if c.Window.Height < 240 || c.Window.Height > 4320 {
		return &ValidationError{Field: "Window.Height", Message: "must be between 240 and 4320"}
	}
	if c.TickRate < 1 || c.TickRate > 240 {
		return &ValidationError{Field: "TickRate", Message: "must be between 1 and 240"}
	}
	if c.StarCount < 0 || c.StarCount > 100000 {
		return &ValidationError{Field: "StarCount", Message: "must be between 0 and 100000"}
	}
	if c.Zoom.Min <= 0 {
		return &ValidationError{Field: "Zoom.Min", Message: "must be positive"}
	}
	if c.Zoom.Max <= c.Zoom.Min {
		return &ValidationError{Field: "Zoom.Max", Message: "must be greater than Zoom.Min"}
	}
	if c.Zoom.Factor <= 1 {
		return &ValidationError{Field: "Zoom.Factor", Message: "must be greater than 1"}
	}
	if c.Ship.Mass <= 0 {
		return &ValidationError{Field: "Ship.Mass", Message: "must be positive"}
	}
	if c.Ship.MainThrust < 0 || c.Ship.RCSThrust < 0 {
		return &ValidationError{Field: "Ship.MainThrust", Message: "thrust must not be negative"}
	}
	if c.Ship.RotateSpeed <= 0 {
		return &ValidationError{Field: "Ship.RotateSpeed", Message: "must be positive"}
	}
	if c.Ship.AltitudeM <= 0 {
		return &ValidationError{Field: "Ship.Altitude", Message: "must be positive"}
	}
	if len(c.Bodies) == 0 {
		return &ValidationError{Field: "Bodies", Message: "at least one body is required"}
	}

	seen := make(map[string]bool, len(c.Bodies))
	for _, b := range c.Bodies {
		if b.Name == "" {
			return &ValidationError{Field: "Bodies", Message: "body name must not be empty"}
		}
		if seen[b.Name] {
			return &ValidationError{Field: "Bodies", Message: fmt.Sprintf("duplicate body name %q", b.Name)}
		}
		seen[b.Name] = true
		if b.Mass <= 0 {
			return &ValidationError{Field: "Bodies", Message: fmt.Sprintf("body %q mass must be positive", b.Name)}
		}
		if b.Radius <= 0 {
			return &ValidationError{Field: "Bodies", Message: fmt.Sprintf("body %q radius must be positive", b.Name)}
		}
		if _, err := b.RGBA(); err != nil {
			return &ValidationError{Field: "Bodies", Message: fmt.Sprintf("body %q color: %v", b.Name, err)}
		}
	}

	if !seen[c.Primary] {
		return &ValidationError{Field: "Primary", Message: fmt.Sprintf("no body named %q", c.Primary)}
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return &ValidationError{Field: "Audio.MasterVolume", Message: "must be between 0 and 1"}
	}

	return nil
}

// DefaultConfig returns the stock Earth/Moon/Sun/Mars system with the tuned
// ship parameters.
func DefaultConfig() *SimConfig {
	return &SimConfig{
		Window: WindowConfig{
			Width:    1620,
			Height:   1100,
			Title:    "Space Simulator",
			FPSLimit: 60,
		},
		TickRate:  60,
		StarCount: 1000,
		Zoom: ZoomConfig{
			Min:    0.1,
			Max:    10.0,
			Factor: 1.2,
		},
		Ship: ShipConfig{
			Mass:        1000,
			MainThrust:  0.1,
			RCSThrust:   0.05,
			RotateSpeed: 5,
			AltitudeM:   400e3,
		},
		Bodies: []BodyConfig{
			{
				Name:   "Earth",
				X:      0,
				Y:      0,
				Mass:   5.972e24,
				Radius: 6371e3,
				Color:  "#6495ED",
			},
			{
				Name:   "Moon",
				X:      384400e3,
				Y:      0,
				Mass:   7.34767309e22,
				Radius: 1737.1e3,
				Color:  "#C8C8C8",
			},
			{
				Name:   "Sun",
				X:      -149.6e9,
				Y:      0,
				Mass:   1.989e30,
				Radius: 696340e3,
				Color:  "#FFD700",
			},
			{
				Name:   "Mars",
				X:      225.0e9,
				Y:      0,
				Mass:   6.39e23,
				Radius: 3389.5e3,
				Color:  "#C26B48",
			},
		},
		Primary: "Earth",
		Audio: AudioConfig{
			MasterVolume: 0.7,
		},
	}
}
