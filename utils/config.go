package utils

import (
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	RendererANSI   = "ansi"
	RendererScreen = "screen"
)

// Config holds the configuration for the simulation
type Config struct {
	Rows         int     `json:"rows"`
	Columns      int     `json:"columns"`
	Density      float64 `json:"density"`
	Generations  int     `json:"generations"`
	FrameDelayMs int     `json:"frame_delay_ms"`
	Renderer     string  `json:"renderer"`
	Seed         int64   `json:"seed"` // 0 picks a time-based seed
}

// DefaultConfig returns the reference configuration
func DefaultConfig() Config {
	return Config{
		Rows:         20,
		Columns:      80,
		Density:      0.1,
		Generations:  500,
		FrameDelayMs: 25,
		Renderer:     RendererANSI,
	}
}

// LoadConfig loads configuration from JSON file, starting from the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows < 1:
		return errors.Errorf("[Validate] rows must be at least 1, got %d", c.Rows)
	case c.Columns < 1:
		return errors.Errorf("[Validate] columns must be at least 1, got %d", c.Columns)
	case c.Density < 0 || c.Density > 1 || math.IsNaN(c.Density):
		return errors.Errorf("[Validate] density must be within [0, 1], got %v", c.Density)
	case c.Generations < 0:
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	case c.FrameDelayMs < 0:
		return errors.Errorf("[Validate] frame_delay_ms must not be negative, got %d", c.FrameDelayMs)
	case c.Renderer != RendererANSI && c.Renderer != RendererScreen:
		return errors.Errorf("[Validate] unknown renderer %q", c.Renderer)
	}
	return nil
}

// FrameDelay returns the pause between frames
func (c Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}

// seedResolution is the range used for densities that are not one-in-n
const seedResolution = 1000

/*
SeedRange converts the density into a uniform draw over outcomes values of
which the first alive mean a live cell.

A density of 1/n keeps a single live outcome out of n, so the default 0.1
draws from 0-9 with one live value. Other densities are resolved to a
thousandth. Zero density yields no live outcomes.
*/
func (c Config) SeedRange() (outcomes, alive int) {
	if c.Density <= 0 {
		return 1, 0
	}
	n := math.Round(1 / c.Density)
	if math.Abs(n*c.Density-1) < 1e-9 {
		return int(n), 1
	}
	return seedResolution, int(math.Round(c.Density * seedResolution))
}
