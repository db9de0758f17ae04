// Package config reads the WELLTRACKS_* environment. Command-line flags are
// applied on top by the binaries.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/iafilius/welltracks/src/tracks"
)

// Config holds the process-wide settings.
type Config struct {
	LogLevel   string `env:"WELLTRACKS_LOG_LEVEL" envDefault:"info"`
	OutputDir  string `env:"WELLTRACKS_OUTPUT_DIR" envDefault:"."`
	PreviewDir string `env:"WELLTRACKS_PREVIEW_DIR"`
	ChartFile  string `env:"WELLTRACKS_CHART_FILE"`
	Input      string `env:"WELLTRACKS_INPUT"`
	PanelWidth int    `env:"WELLTRACKS_PANEL_WIDTH" envDefault:"240"`
	Height     int    `env:"WELLTRACKS_FIGURE_HEIGHT" envDefault:"1200"`
	StripWidth int    `env:"WELLTRACKS_STRIP_WIDTH" envDefault:"100"`
	Workers    int    `env:"WELLTRACKS_WORKERS" envDefault:"4"`
	Headless   bool   `env:"WELLTRACKS_HEADLESS"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var c Config
	if err := ParseEnv(&c); err != nil {
		return Config{}, err
	}
	if c.Workers < 1 {
		return Config{}, fmt.Errorf("WELLTRACKS_WORKERS must be at least 1, got %d", c.Workers)
	}
	return c, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// RenderOptions returns the figure geometry, clamped like the renderer does.
func (c Config) RenderOptions() tracks.Options {
	o := tracks.DefaultOptions()
	o.PanelWidth, o.Height = tracks.ComputePanelDimensions(c.PanelWidth, c.Height)
	if c.StripWidth > 0 {
		o.StripWidth = c.StripWidth
	}
	return o
}
