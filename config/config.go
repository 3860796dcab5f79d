// Package config resolves gridpath settings.
//
// Precedence, lowest to highest: Default, YAML file, environment (a .env
// file is loaded into the environment first), command-line flags. Flags are
// applied by the CLI on top of the Config returned here.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MaxSize bounds the grid dimension accepted from configuration.
const MaxSize = 500

// EnvPrefix prefixes every environment key, e.g. GRIDPATH_SIZE.
const EnvPrefix = "GRIDPATH_"

// Config holds the settings for one gridpath session.
type Config struct {
	Size        int           `yaml:"size"`         // grid dimension N
	Delay       time.Duration `yaml:"delay"`        // pause between rendered steps
	Algorithm   string        `yaml:"algorithm"`    // default algorithm for solve
	LogLevel    string        `yaml:"log_level"`    // debug, info, warn, error
	LogFormat   string        `yaml:"log_format"`   // text or json
	MetricsAddr string        `yaml:"metrics_addr"` // empty disables the metrics server
	CellWidth   int           `yaml:"cell_width"`   // terminal columns per cell
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Size:      grid.DefaultSize,
		Delay:     50 * time.Millisecond,
		Algorithm: "bfs",
		LogLevel:  "info",
		LogFormat: "text",
		CellWidth: 2,
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// skips the file. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays GRIDPATH_* variables found through lookup, usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, EnvPrefix, key, err)
		}
		*dst = n
		return nil
	}

	if err := num("SIZE", &c.Size); err != nil {
		return err
	}
	if err := num("CELL_WIDTH", &c.CellWidth); err != nil {
		return err
	}
	if v, ok := lookup(EnvPrefix + "DELAY"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sDELAY: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Delay = d
	}
	str("ALGORITHM", &c.Algorithm)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("METRICS_ADDR", &c.MetricsAddr)
	return nil
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Size < 1 || c.Size > MaxSize:
		return fmt.Errorf("%w: size %d out of range [1,%d]", ErrInvalidConfig, c.Size, MaxSize)
	case c.Delay < 0:
		return fmt.Errorf("%w: negative delay %s", ErrInvalidConfig, c.Delay)
	case c.CellWidth < 1 || c.CellWidth > 4:
		return fmt.Errorf("%w: cell_width %d out of range [1,4]", ErrInvalidConfig, c.CellWidth)
	case !slices.Contains([]string{"text", "json"}, strings.ToLower(c.LogFormat)):
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	case !slices.Contains([]string{"debug", "info", "warn", "warning", "error"}, strings.ToLower(c.LogLevel)):
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if _, err := algorithms.Lookup(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
