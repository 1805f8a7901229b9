// SPDX-License-Identifier: MIT

// Package config loads pathboard settings from an optional YAML file.
//
// Every section has a usable default; a file only needs the keys it changes.
// CLI flags are applied on top by the caller, which validates once they are in
// place: Decode does not validate, Load does.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathboard/builder"
	"github.com/katalvlaran/pathboard/core"
)

// ErrInvalidConfig is returned by Validate and wraps every rejected value.
var ErrInvalidConfig = errors.New("config: invalid")

// Log formats understood by internal/logging.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

var levels = []string{"debug", "info", "warn", "error"}

// Config is the root of the YAML document.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Editor  EditorConfig  `yaml:"editor"`
	Demo    DemoConfig    `yaml:"demo"`
}

// LogConfig selects the zap encoder and level.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is non-empty.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// EditorConfig tunes the interactive editor.
type EditorConfig struct {
	Prompt string `yaml:"prompt"`
	// History is the number of transcript lines the TUI keeps.
	History int `yaml:"history"`
	// NodeRadius is the drawn radius of a node. A new or moved node may not
	// come closer than 2*NodeRadius to another; 0 only refuses identical coordinates.
	NodeRadius int `yaml:"node_radius"`
}

// DemoConfig drives `pathboard demo`.
type DemoConfig struct {
	Shape     string `yaml:"shape"`
	Size      int    `yaml:"size"`
	Seed      int64  `yaml:"seed"`
	MinWeight int64  `yaml:"min_weight"`
	MaxWeight int64  `yaml:"max_weight"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: FormatConsole},
		Editor: EditorConfig{Prompt: "> ", History: 500},
		Demo: DemoConfig{
			Shape:     builder.ShapeGrid,
			Size:      5,
			Seed:      1,
			MinWeight: 1,
			MaxWeight: 9,
		},
	}
}

// Decode returns Default when path is empty; otherwise it overlays the YAML
// file at path on the defaults. Values are not validated.
func Decode(path string) (Config, error) {
	cfg := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Load is Decode followed by Validate.
func Load(path string) (Config, error) {
	cfg, err := Decode(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decode rejects unknown keys so typos do not pass silently.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate normalizes case and checks every field.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Demo.Shape = strings.ToLower(strings.TrimSpace(c.Demo.Shape))

	var errs []error
	if !slices.Contains(levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("%w: log.level %q (want one of %s)", ErrInvalidConfig, c.Log.Level, strings.Join(levels, ", ")))
	}
	if c.Log.Format != FormatJSON && c.Log.Format != FormatConsole {
		errs = append(errs, fmt.Errorf("%w: log.format %q (want json or console)", ErrInvalidConfig, c.Log.Format))
	}
	if c.Editor.History < 0 {
		errs = append(errs, fmt.Errorf("%w: editor.history must be >= 0, got %d", ErrInvalidConfig, c.Editor.History))
	}
	if c.Editor.NodeRadius < 0 {
		errs = append(errs, fmt.Errorf("%w: editor.node_radius must be >= 0, got %d", ErrInvalidConfig, c.Editor.NodeRadius))
	}
	if !slices.Contains(builder.Shapes(), c.Demo.Shape) {
		errs = append(errs, fmt.Errorf("%w: demo.shape %q (want one of %s)", ErrInvalidConfig, c.Demo.Shape, strings.Join(builder.Shapes(), ", ")))
	}
	if c.Demo.Size < 2 {
		errs = append(errs, fmt.Errorf("%w: demo.size must be >= 2, got %d", ErrInvalidConfig, c.Demo.Size))
	}
	if c.Demo.MinWeight < 1 || c.Demo.MaxWeight < c.Demo.MinWeight || c.Demo.MaxWeight > core.MaxWeight {
		errs = append(errs, fmt.Errorf("%w: demo weights need 1 <= min_weight <= max_weight <= %d, got %d..%d",
			ErrInvalidConfig, core.MaxWeight, c.Demo.MinWeight, c.Demo.MaxWeight))
	}

	return errors.Join(errs...)
}
