// Package config loads the editor's runtime settings from CHAIKIN_*
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Mouse binding schemes. RightDrag is the canonical one; LeftOnly folds
// add and drag onto the primary button for one-button setups.
const (
	BindingRightDrag = "right-drag"
	BindingLeftOnly  = "left-only"
)

// Config holds everything tunable from outside the binary. Canvas geometry
// and the subdivision constants are part of the tool's behavioral contract
// and are deliberately not configurable.
type Config struct {
	LogLevel       string `envconfig:"LOG_LEVEL" default:"INFO"`
	AnimIntervalMS int    `envconfig:"ANIM_INTERVAL_MS" default:"1000"`
	Binding        string `envconfig:"BINDING" default:"right-drag"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("chaikin", &c); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if c.AnimIntervalMS <= 0 {
		return Config{}, fmt.Errorf("animation interval must be positive, got %dms", c.AnimIntervalMS)
	}
	switch c.Binding {
	case BindingRightDrag, BindingLeftOnly:
	default:
		return Config{}, fmt.Errorf("unknown binding %q (want %q or %q)", c.Binding, BindingRightDrag, BindingLeftOnly)
	}
	return c, nil
}

// AnimInterval returns the playback advance interval as a duration.
func (c Config) AnimInterval() time.Duration {
	return time.Duration(c.AnimIntervalMS) * time.Millisecond
}
