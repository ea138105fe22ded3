// Package navconfig provides YAML-backed configuration for the simulation:
// tick rate, per-agent kinematic defaults, spatial-grid cell size, and debug
// toggles, loaded the same way as the embedded-defaults-plus-override file
// pattern this system's ambient stack follows elsewhere.
package navconfig

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds simulation-wide defaults. Every field here is a starting
// point for agent construction, not a replacement for per-agent state —
// callers may override any of it.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Agent   AgentConfig   `yaml:"agent"`
	Debug   DebugConfig   `yaml:"debug"`
}

// PhysicsConfig holds the tick rate and spatial-index granularity.
type PhysicsConfig struct {
	DT           float64 `yaml:"dt"`
	GridCellSize float64 `yaml:"grid_cell_size"`
}

// AgentConfig holds default kinematic limits and neighbor-search bounds
// for newly constructed agents.
type AgentConfig struct {
	Radius       float64 `yaml:"radius"`
	MaxSpeed     float64 `yaml:"max_speed"`
	PrefSpeed    float64 `yaml:"pref_speed"`
	MaxAccel     float64 `yaml:"max_accel"`
	NeighborDist float64 `yaml:"neighbor_dist"`
	MaxNeighbors int     `yaml:"max_neighbors"`
}

// DebugConfig controls debug introspection.
type DebugConfig struct {
	Enabled          bool `yaml:"enabled"`
	EventHistorySize int  `yaml:"event_history_size"`
}

// Load loads configuration from a YAML file, merging it over the embedded
// defaults: fields the file doesn't set keep their default value. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("navconfig: parsing embedded defaults: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("navconfig: reading override file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("navconfig: parsing override file: %w", err)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error. Intended for cmd/navdemo, never
// for library code.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
