// Package config loads simulation settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for the config file.
const DefaultPath = "simplerpg.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings for a session.
type Config struct {
	// Timers, in seconds of simulated time
	StatusUpdate float64 `yaml:"status_update" validate:"gt=0"`
	AIUpdate     float64 `yaml:"ai_update" validate:"gt=0"`

	// Frames per second of the real-time loop
	TickRate int `yaml:"tick_rate" validate:"min=1,max=240"`

	Arena   ArenaConfig `yaml:"arena"`
	Party   []Spawn     `yaml:"party" validate:"min=1,dive"`
	Enemies []Spawn     `yaml:"enemies" validate:"min=1,dive"`
	Log     LogConfig   `yaml:"log"`
}

// ArenaConfig sets the battlefield size.
type ArenaConfig struct {
	Width  int `yaml:"width" validate:"min=4"`
	Height int `yaml:"height" validate:"min=4"`
}

// Spawn places one unit at session start. A position off the arena floor,
// including an omitted one, means the center of that side's zone.
type Spawn struct {
	Def  string  `yaml:"def" validate:"required"` // Unit definition ID
	Name string  `yaml:"name"`                    // Optional display name
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the stock party of three dwarves against one goblin.
func Default() Config {
	return Config{
		StatusUpdate: 1,
		AIUpdate:     1,
		TickRate:     30,
		Arena:        ArenaConfig{Width: 20, Height: 12},
		Party: []Spawn{
			{Def: "dwarf_runemaster", Name: "Dwarf1", X: 1, Y: 1},
			{Def: "dwarf_base", Name: "Dwarf2", X: 6, Y: 6},
			{Def: "dwarf_mace", Name: "Dwarf3", X: 3, Y: 3},
		},
		Enemies: []Spawn{
			{Def: "goblin_ninja", Name: "Goblin", X: 8, Y: 3},
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the config at path from fs, layered over Default. A missing
// file yields the defaults. Environment overrides are applied last.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fs, path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// applyEnv lets SIMPLERPG_LOG_LEVEL and SIMPLERPG_LOG_FORMAT override the file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SIMPLERPG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SIMPLERPG_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
