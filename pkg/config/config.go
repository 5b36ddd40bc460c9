// Package config loads the TOML theme and rendering configuration.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ballotviz/ballotviz/pkg/errors"
)

// Config is the full application configuration.
type Config struct {
	Viewport Viewport          `toml:"viewport"`
	Layout   Layout            `toml:"layout"`
	Parties  map[string]string `toml:"parties"` // party code -> hex color
}

// Viewport holds the default render dimensions.
type Viewport struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Padding float64 `toml:"padding"`
}

// Layout holds the parliament geometry knobs.
type Layout struct {
	RowCount    int     `toml:"row_count"`
	InnerRadius float64 `toml:"inner_radius"`
	OuterRadius float64 `toml:"outer_radius"`
	AreaDivisor float64 `toml:"area_divisor"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Viewport: Viewport{Width: 800, Height: 600, Padding: 40},
		Layout:   Layout{RowCount: 5, InnerRadius: 60, OuterRadius: 260, AreaDivisor: 12},
		Parties: map[string]string{
			"DPP": "#1B9431",
			"KMT": "#000099",
			"IND": "#999999",
		},
	}
}

// Load reads a TOML configuration file and overlays it on the defaults.
// Unset sections keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks dimensions and party color declarations.
func (c Config) Validate() error {
	if err := errors.ValidateViewport(c.Viewport.Width, c.Viewport.Height); err != nil {
		return err
	}
	if c.Viewport.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "padding must not be negative, got %g", c.Viewport.Padding)
	}
	if c.Layout.RowCount <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "row count must be positive, got %d", c.Layout.RowCount)
	}
	if c.Layout.InnerRadius <= 0 || c.Layout.OuterRadius <= c.Layout.InnerRadius {
		return errors.New(errors.ErrCodeInvalidInput,
			"radii must satisfy 0 < inner < outer, got %g and %g", c.Layout.InnerRadius, c.Layout.OuterRadius)
	}
	for code := range c.Parties {
		if err := errors.ValidatePartyCode(code); err != nil {
			return err
		}
	}
	return nil
}

// ColorFor returns the configured color for a party code, or the empty
// string when none is set.
func (c Config) ColorFor(partyID string) string {
	return c.Parties[partyID]
}
