// Package config loads the on-disk codec configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tobyvance/glyphgrid/internal/protocol/grid"
)

// Config mirrors the documented configuration surface: grid size, marker
// footprint, central exclusion radius, and the integrity check toggle.
type Config struct {
	GridSize        int  `toml:"grid_size"`
	MarkerSize      int  `toml:"marker_size"`
	ExclusionRadius int  `toml:"exclusion_radius"`
	Checksum        bool `toml:"checksum"`
}

func Default() Config {
	g := grid.DefaultConfig()
	return Config{
		GridSize:   g.Size,
		MarkerSize: g.MarkerSize,
		Checksum:   true,
	}
}

// Load reads a TOML config from path. Absent keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

// Grid converts to the geometry the codec consumes.
func (c Config) Grid() grid.Config {
	return grid.Config{
		Size:            c.GridSize,
		MarkerSize:      c.MarkerSize,
		ExclusionRadius: c.ExclusionRadius,
	}
}

func (c Config) Validate() error {
	return c.Grid().Validate()
}
