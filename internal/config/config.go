package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"InkBoard/internal/state"
)

const configFile = "config.toml"

// Config holds the canvas settings read from config.toml.
type Config struct {
	Width           int
	Height          int
	Scale           float64
	Debug           bool
	PreciseLocation bool

	// PrimaryKind is the contact kind drawn in the normal color.
	PrimaryKind string
	// PointerKind is the contact kind the mouse stands in for.
	PointerKind string
	// Predict adds one forecast reading to every pointer move.
	Predict bool
	// EstimateForce reports pointer force as estimated and corrects it on
	// the next event.
	EstimateForce bool

	LogLevel string
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Width:       1024,
		Height:      768,
		Scale:       2,
		Debug:       true,
		PrimaryKind: "stylus",
		PointerKind: "stylus",
		Predict:     true,
		LogLevel:    "info",
	}
}

// Path is where the configuration lives by default.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "inkboard", configFile)
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("could not read config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return conf, nil
}

// Save writes conf to path, creating its directory.
func Save(path string, conf Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write config: %w", err)
	}
	return nil
}

// Validate checks the values Load cannot check by type.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %v must be positive", c.Scale)
	}
	if _, err := ParseKind(c.PrimaryKind); err != nil {
		return err
	}
	if _, err := ParseKind(c.PointerKind); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Primary returns the parsed PrimaryKind.
func (c Config) Primary() state.ContactKind {
	k, _ := ParseKind(c.PrimaryKind)
	return k
}

// Pointer returns the parsed PointerKind.
func (c Config) Pointer() state.ContactKind {
	k, _ := ParseKind(c.PointerKind)
	return k
}

// Level returns the parsed LogLevel.
func (c Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// ParseKind parses "stylus" or "finger".
func ParseKind(s string) (state.ContactKind, error) {
	switch s {
	case "stylus", "":
		return state.Stylus, nil
	case "finger":
		return state.Finger, nil
	}
	return state.Stylus, fmt.Errorf("unknown contact kind %q", s)
}

// ParseLevel parses a slog level name such as "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return l, nil
}
