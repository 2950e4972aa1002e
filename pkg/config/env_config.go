// pkg/config/env_config.go
package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvironmentConfig holds the process-level settings read from BSS_*
// environment variables. These select the renderer and window before any
// JSON config is loaded; ApplyEnvironmentOverrides folds the overlapping
// values into a SimConfig.
type EnvironmentConfig struct {
	LogLevel     string
	Renderer     string
	ConfigPath   string
	WindowWidth  int
	WindowHeight int
	StarCount    int
	TickRate     int
	Fullscreen   bool
	MasterVolume float64
}

// LoadConfigFromEnv reads the environment configuration, applying defaults
// for unset variables, and validates the result.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	cfg := &EnvironmentConfig{
		LogLevel:     getEnvOrDefault("BSS_LOG_LEVEL", "info"),
		Renderer:     getEnvOrDefault("BSS_RENDERER", "engo"),
		ConfigPath:   getEnvOrDefault("BSS_CONFIG", ""),
		WindowWidth:  getEnvAsIntOrDefault("BSS_WINDOW_WIDTH", 1620),
		WindowHeight: getEnvAsIntOrDefault("BSS_WINDOW_HEIGHT", 1100),
		StarCount:    getEnvAsIntOrDefault("BSS_STAR_COUNT", 1000),
		TickRate:     getEnvAsIntOrDefault("BSS_TICK_RATE", 60),
		Fullscreen:   getEnvAsBoolOrDefault("BSS_FULLSCREEN", false),
		MasterVolume: getEnvAsFloatOrDefault("BSS_MASTER_VOLUME", 1.0),
	}

	if err := validateEnvironmentConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateEnvironmentConfig checks environment values before they reach the
// simulation.
func validateEnvironmentConfig(cfg *EnvironmentConfig) error {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Field: "LogLevel", Message: "must be one of debug, info, warn, error"}
	}

	switch cfg.Renderer {
	case "engo", "console", "null":
	default:
		return &ValidationError{Field: "Renderer", Message: "must be one of engo, console, null"}
	}

	if cfg.WindowWidth < 320 || cfg.WindowWidth > 7680 {
		return &ValidationError{Field: "WindowWidth", Message: "must be between 320 and 7680"}
	}
	if cfg.WindowHeight < 240 || cfg.WindowHeight > 4320 {
		return &ValidationError{Field: "WindowHeight", Message: "must be between 240 and 4320"}
	}
	if cfg.StarCount < 0 || cfg.StarCount > 100000 {
		return &ValidationError{Field: "StarCount", Message: "must be between 0 and 100000"}
	}
	if cfg.TickRate < 1 || cfg.TickRate > 240 {
		return &ValidationError{Field: "TickRate", Message: "must be between 1 and 240"}
	}
	if cfg.MasterVolume < 0 || cfg.MasterVolume > 1 {
		return &ValidationError{Field: "MasterVolume", Message: "must be between 0 and 1"}
	}

	return nil
}

// ApplyEnvironmentOverrides overlays set BSS_* variables onto an existing
// simulation config. Unset variables leave the loaded values untouched; the
// merged config is validated before returning.
func ApplyEnvironmentOverrides(cfg *SimConfig) error {
	cfg.Window.Width = getEnvAsIntOrDefault("BSS_WINDOW_WIDTH", cfg.Window.Width)
	cfg.Window.Height = getEnvAsIntOrDefault("BSS_WINDOW_HEIGHT", cfg.Window.Height)
	cfg.Window.Fullscreen = getEnvAsBoolOrDefault("BSS_FULLSCREEN", cfg.Window.Fullscreen)
	cfg.StarCount = getEnvAsIntOrDefault("BSS_STAR_COUNT", cfg.StarCount)
	cfg.TickRate = getEnvAsIntOrDefault("BSS_TICK_RATE", cfg.TickRate)
	cfg.Audio.MasterVolume = getEnvAsFloatOrDefault("BSS_MASTER_VOLUME", cfg.Audio.MasterVolume)

	return cfg.Validate()
}

// getEnvOrDefault returns the environment value or a fallback when unset.
func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsIntOrDefault parses an integer environment value, falling back on
// absence or parse failure.
func getEnvAsIntOrDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvAsBoolOrDefault parses a boolean environment value, falling back on
// absence or parse failure.
func getEnvAsBoolOrDefault(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvAsFloatOrDefault parses a float environment value, falling back on
// absence or parse failure.
func getEnvAsFloatOrDefault(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
