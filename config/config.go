// Package config loads the settings of the pathfind command from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/rhartert/pathfind/sssp"
)

// Config holds all the settings of the command line.
type Config struct {
	Log     Log     `toml:"log"`
	Graph   Graph   `toml:"graph"`
	Ladder  Ladder  `toml:"ladder"`
	Metrics Metrics `toml:"metrics"`
}

// Log configures the logger.
type Log struct {
	Level  string `toml:"level"`  // debug, info, warn or error
	Format string `toml:"format"` // text or json
}

// Graph configures shortest path computations.
type Graph struct {
	File     string `toml:"file"`
	Source   int    `toml:"source"`
	Frontier string `toml:"frontier"` // lazy or indexed
}

// Ladder configures word ladder searches.
type Ladder struct {
	Dictionary string `toml:"dictionary"`
}

// Metrics configures where run metrics are dumped. Nothing is written if File
// is empty.
type Metrics struct {
	File string `toml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Graph: Graph{
			Source:   0,
			Frontier: "lazy",
		},
		Ladder: Ladder{
			Dictionary: "words.txt",
		},
	}
}

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "pathfind.toml"

// Load reads the configuration file at path on top of Default. An empty path
// returns the default configuration. A missing file is an error wrapping
// fs.ErrNotExist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is like Load except that a missing file is not an error: the
// default configuration is returned instead.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate returns an error if one of the settings has an unsupported value.
func (c Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.Log.Format)
	}
	if c.Graph.Source < 0 {
		return fmt.Errorf("source must be non-negative, got %d", c.Graph.Source)
	}
	if _, err := c.Graph.FrontierKind(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts the level name to a slog.Level.
func (l Log) SlogLevel() (slog.Level, error) {
	switch l.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", l.Level)
	}
}

// FrontierKind converts the frontier name to a sssp.Frontier.
func (g Graph) FrontierKind() (sssp.Frontier, error) {
	switch g.Frontier {
	case "lazy", "":
		return sssp.LazyFrontier, nil
	case "indexed":
		return sssp.IndexedFrontier, nil
	default:
		return sssp.LazyFrontier, fmt.Errorf("frontier must be lazy or indexed, got %q", g.Frontier)
	}
}
