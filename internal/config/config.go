// Package config loads the rush-hour configuration.
//
// Settings come from three layers, later layers winning:
//  1. built-in defaults (Default)
//  2. a YAML file, .rush-hour.yaml unless --config names another one
//  3. RUSH_HOUR_* environment variables, optionally seeded from a .env file
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/edouardmenayde/rush-hour/internal/puzzle"
)

// DefaultFile is the config file looked up in the working directory when
// no explicit path is given.
const DefaultFile = ".rush-hour.yaml"

// Environment variables that override file settings.
const (
	EnvPuzzle    = "RUSH_HOUR_PUZZLE"
	EnvPuzzleDir = "RUSH_HOUR_PUZZLE_DIR"
	EnvAddr      = "RUSH_HOUR_ADDR"
)

// Config is the full set of user settings.
type Config struct {
	// Puzzle is the file rendered when no path is given on the command line.
	Puzzle string `yaml:"puzzle"`

	// PuzzleDir is where the HTTP server looks up named puzzles.
	PuzzleDir string `yaml:"puzzle_dir"`

	// Echo prints the raw puzzle text before the board.
	Echo bool `yaml:"echo"`

	// Color styles occupied cells.
	Color bool `yaml:"color"`

	Parse  ParseConfig  `yaml:"parse"`
	Render RenderConfig `yaml:"render"`
	Server ServerConfig `yaml:"server"`
}

// ParseConfig mirrors puzzle.ParseOptions.
type ParseConfig struct {
	StrictOrientation bool `yaml:"strict_orientation"`
	SkipBlankLines    bool `yaml:"skip_blank_lines"`
}

// RenderConfig mirrors puzzle.RenderOptions, minus colour which is top level.
type RenderConfig struct {
	TrimBorderSpace bool `yaml:"trim_border_space"`
}

// ServerConfig holds the settings of the serve command.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration. Its parse and render
// settings reproduce the reference puzzle format exactly.
func Default() *Config {
	return &Config{
		Puzzle:    "assets/puzzles/31.txt",
		PuzzleDir: "assets/puzzles",
		Server: ServerConfig{
			Addr: "localhost:8080",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and
// the environment.
//
// An empty path means DefaultFile, which may be absent. An explicit path
// must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file; defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads a .env file from the working directory into the process
// environment. A missing file is not an error. Variables already set are
// not overridden.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPuzzle); v != "" {
		c.Puzzle = v
	}
	if v := os.Getenv(EnvPuzzleDir); v != "" {
		c.PuzzleDir = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.Puzzle == "" {
		return fmt.Errorf("config validation: puzzle is required")
	}
	if c.PuzzleDir == "" {
		return fmt.Errorf("config validation: puzzle_dir is required")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("config validation: server.addr is required")
	}
	return nil
}

// ParseOptions converts the parse settings for the puzzle package.
func (c *Config) ParseOptions() puzzle.ParseOptions {
	return puzzle.ParseOptions{
		StrictOrientation: c.Parse.StrictOrientation,
		SkipBlankLines:    c.Parse.SkipBlankLines,
	}
}

// RenderOptions converts the render settings for the puzzle package.
func (c *Config) RenderOptions() puzzle.RenderOptions {
	return puzzle.RenderOptions{
		Color:           c.Color,
		TrimBorderSpace: c.Render.TrimBorderSpace,
	}
}
