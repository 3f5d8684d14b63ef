// Package config loads the cellpaint run configuration from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/cellpaint/palette"
	"github.com/lixenwraith/cellpaint/terminal"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Sinks lists the accepted presenter names
var Sinks = []string{"ansi", "tcell"}

// Config is the run configuration. Zero width or height means the terminal size
type Config struct {
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Interval   Duration `toml:"interval"`
	Sink       string   `toml:"sink"`
	ColorMode  string   `toml:"color_mode"`
	Background string   `toml:"background"`
	Demo       string   `toml:"demo"`
	Log        Log      `toml:"log"`
}

// Log configures debug logging
type Log struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Duration reads TOML strings like "33ms"
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Interval:   Duration{33 * time.Millisecond},
		Sink:       "ansi",
		ColorMode:  "auto",
		Background: "black",
		Demo:       "cube",
		Log:        Log{Dir: "logs"},
	}
}

// Parse decodes TOML over the defaults and validates the result. Unknown keys
// are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return cfg, cfg.Validate()
}

// Load reads and parses the file at path. An empty path yields the defaults
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Encode renders cfg as TOML
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Interval.Duration <= 0 {
		return fmt.Errorf("%w: interval %v", ErrInvalid, c.Interval.Duration)
	}
	if !slices.Contains(Sinks, c.Sink) {
		return fmt.Errorf("%w: sink %q", ErrInvalid, c.Sink)
	}
	if _, err := terminal.NormalizeColorMode(c.ColorMode); err != nil {
		return fmt.Errorf("%w: color_mode: %v", ErrInvalid, err)
	}
	if _, err := palette.Parse(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalid, err)
	}
	if c.Log.Debug && c.Log.Dir == "" {
		return fmt.Errorf("%w: log.dir is empty", ErrInvalid)
	}
	return nil
}

// BackgroundColor returns the parsed background colour
func (c Config) BackgroundColor() palette.Color {
	col, err := palette.Parse(c.Background)
	if err != nil {
		return palette.Black
	}
	return col
}
