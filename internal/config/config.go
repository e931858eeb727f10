// Package config loads the sandbox and engine settings from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"blastradius/internal/blast"
	"blastradius/internal/effect"
	"blastradius/internal/fragment"
	"blastradius/internal/grid"

	"github.com/BurntSushi/toml"
)

// Built-in arena layouts.
const (
	LayoutYard  = "yard"
	LayoutRooms = "rooms"
)

// ErrUnknownVariant is returned for a blast variant, metric or layout name
// that is not known.
var ErrUnknownVariant = errors.New("config: unknown variant")

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Logging Logging       `toml:"logging"`
	Sandbox SandboxConfig `toml:"sandbox"`
	Server  ServerConfig  `toml:"server"`
}

type EngineConfig struct {
	BlastVariant           string  `toml:"blast_variant"`   // "sorted" or "legacy"
	DistanceMetric         string  `toml:"distance_metric"` // "euclidean" or "chebyshev"
	ZLevels                bool    `toml:"z_levels"`
	BashDissipation        float64 `toml:"bash_dissipation"`
	FlingCoefficient       float64 `toml:"fling_coefficient"`
	ShrapnelObstacleFactor float64 `toml:"shrapnel_obstacle_factor"`
	Strict                 bool    `toml:"strict"` // panic on programming errors
}

type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty logs to stderr
}

type SandboxConfig struct {
	Seed       int64         `toml:"seed"` // 0 seeds from the clock
	Width      int           `toml:"width"`
	Height     int           `toml:"height"`
	FrameDelay time.Duration `toml:"frame_delay"`
	Scenario   string        `toml:"scenario"` // optional YAML arena
	Layout     string        `toml:"layout"`   // "yard" or "rooms" when no scenario
}

type ServerConfig struct {
	Port    int    `toml:"port"`
	HostKey string `toml:"host_key"`
}

// Default is the configuration used when no file is given.
func Default() *Config { return defaults() }

func defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			BlastVariant:           "sorted",
			DistanceMetric:         "euclidean",
			ZLevels:                true,
			BashDissipation:        blast.DefaultDissipation,
			FlingCoefficient:       blast.DefaultFlingCoefficient,
			ShrapnelObstacleFactor: fragment.DefaultObstacleFactor,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
			File:   "blastradius.log",
		},
		Sandbox: SandboxConfig{
			Width:      60,
			Height:     22,
			FrameDelay: 40 * time.Millisecond,
			Layout:     LayoutYard,
		},
		Server: ServerConfig{
			Port:    2222,
			HostKey: ".ssh/blastradius_host_ed25519",
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := cfg.Effect(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Sandbox.Width < 3 || cfg.Sandbox.Height < 3 {
		return nil, fmt.Errorf("config %s: sandbox must be at least 3x3, got %dx%d",
			path, cfg.Sandbox.Width, cfg.Sandbox.Height)
	}
	switch cfg.Sandbox.Layout {
	case LayoutYard, LayoutRooms:
	default:
		return nil, fmt.Errorf("config %s: layout %q: %w", path, cfg.Sandbox.Layout, ErrUnknownVariant)
	}
	return cfg, nil
}

// Effect converts the engine section into an engine configuration.
func (c *Config) Effect() (effect.Config, error) {
	e := c.Engine
	variant, err := blast.ParseVariant(e.BlastVariant)
	if err != nil {
		return effect.Config{}, fmt.Errorf("blast_variant %q: %w", e.BlastVariant, ErrUnknownVariant)
	}
	metric, err := grid.ParseMetric(e.DistanceMetric)
	if err != nil {
		return effect.Config{}, fmt.Errorf("distance_metric %q: %w", e.DistanceMetric, ErrUnknownVariant)
	}
	if e.BashDissipation < 0 || e.BashDissipation >= 1 {
		return effect.Config{}, fmt.Errorf("bash_dissipation %.3f must be in [0, 1)", e.BashDissipation)
	}
	return effect.Config{
		Blast: blast.Config{
			Variant:          variant,
			Metric:           metric,
			ZLevels:          e.ZLevels,
			Dissipation:      e.BashDissipation,
			FlingCoefficient: e.FlingCoefficient,
		},
		ObstacleFactor: e.ShrapnelObstacleFactor,
		Strict:         e.Strict,
	}, nil
}
