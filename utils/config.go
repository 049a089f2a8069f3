package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"` // nanoseconds in JSON, e.g. 10000000 for 10ms
	Pattern             string        `json:"pattern"`
	Randomize           bool          `json:"randomize"`
	Seed                int64         `json:"seed"` // 0 seeds from the clock
	MaxGenerations      int           `json:"max_generations"`
	Workers             int           `json:"workers"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	StopWhenStable      bool          `json:"stop_when_stable"`
	Color               bool          `json:"color"`
	Render              bool          `json:"render"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               80,
		Height:              60,
		FrameRate:           10 * time.Millisecond,
		MaxGenerations:      1000,
		Workers:             1,
		StagnationThreshold: 5,
		StopWhenStable:      true,
		Color:               true,
		Render:              true,
	}
}

// LoadConfig loads configuration from JSON file
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
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the values can drive a simulation
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Errorf("frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Workers < 1:
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	case c.StagnationThreshold < 0:
		return errors.Errorf("stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	case c.Pattern != "" && c.Randomize:
		return errors.New("pattern and randomize are mutually exclusive")
	}
	return nil
}
