// SPDX-License-Identifier: MIT
// Package: fairrand/config
//
// config.go - file and environment configuration for named streams.
//
// Precedence: built-in defaults, then the YAML file, then FAIRRAND_*
// environment variables. The result is validated once, after all layers.

// Package config loads stream definitions from YAML and the environment and
// turns them into filtered generators.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"
	"go.yaml.in/yaml/v4"

	"github.com/katalvlaran/fairrand/generator"
	"github.com/katalvlaran/fairrand/source"
)

// Config is the top-level document.
type Config struct {
	Seed        uint64   `yaml:"seed"`
	RetryBudget int      `yaml:"retry_budget" validate:"gte=1"`
	Log         Log      `yaml:"log"`
	MetricsFile string   `yaml:"metrics_file"`
	Streams     []Stream `yaml:"streams" validate:"unique=Name,dive"`
}

// overrides mirrors the FAIRRAND_* variables; nil fields were not set.
type overrides struct {
	Seed        *uint64 `env:"FAIRRAND_SEED"`
	RetryBudget *int    `env:"FAIRRAND_RETRY_BUDGET"`
	LogLevel    *string `env:"FAIRRAND_LOG_LEVEL"`
	LogFormat   *string `env:"FAIRRAND_LOG_FORMAT"`
	MetricsFile *string `env:"FAIRRAND_METRICS_FILE"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	// auto picks text on a terminal and json otherwise.
	Format string `yaml:"format" validate:"oneof=text json auto"`
}

// Stream defines one named generator.
type Stream struct {
	Name string `yaml:"name" validate:"required"`
	Kind string `yaml:"kind" validate:"required,oneof=bool int float gaussian"`

	// int and float: half-open domain [min, max).
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`

	// gaussian
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev" validate:"gte=0"`

	// Seed pins the stream; otherwise it is derived from the root seed and
	// the stream's position.
	Seed        *uint64 `yaml:"seed"`
	RetryBudget int     `yaml:"retry_budget" validate:"gte=0"`

	// Unfiltered disables every pattern. Without it an empty Patterns list
	// means the full catalog for Kind.
	Unfiltered bool      `yaml:"unfiltered"`
	Patterns   []Pattern `yaml:"patterns" validate:"dive"`
}

// Pattern names a catalog entry, or defines a custom one when Kind is set.
type Pattern struct {
	Name string `yaml:"name" validate:"required"`
	Kind string `yaml:"kind" validate:"omitempty,oneof=neighbour neighbor occurrence list"`

	Check     int     `yaml:"check" validate:"gte=0"`
	Match     int     `yaml:"match" validate:"gte=0"`
	Offset    int     `yaml:"offset" validate:"gte=0"`
	Compare   string  `yaml:"compare" validate:"omitempty,oneof=equal not_equal greater less within"`
	Tolerance float64 `yaml:"tolerance" validate:"gte=0"`

	Count        int     `yaml:"count" validate:"gte=0"`
	MinLookBack  int     `yaml:"min_look_back" validate:"gte=0"`
	MaxLookBack  int     `yaml:"max_look_back" validate:"gte=0"`
	Low          float64 `yaml:"low" validate:"gte=0,lte=1,ltefield=High"`
	High         float64 `yaml:"high" validate:"gte=0,lte=1"`
	MinRangeSize int     `yaml:"min_range_size" validate:"gte=0"`
	Audit        string  `yaml:"audit" validate:"omitempty,oneof=windowed whole-sequence"`

	Rule    string `yaml:"rule" validate:"omitempty,oneof=duplicate opposite"`
	Length  int    `yaml:"length" validate:"gte=0"`
	Repeats int    `yaml:"repeats" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Seed:        source.DefaultSeed,
		RetryBudget: generator.DefaultRetryBudget,
		Log:         Log{Level: "info", Format: "text"},
	}
}

// Read decodes YAML over the defaults, applies the environment and
// validates. An empty document yields the defaults.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, fmt.Errorf("%w: env: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Load reads the file at path; an empty path means defaults plus
// environment.
func Load(path string) (Config, error) {
	if path == "" {
		return Read(strings.NewReader(""))
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Read(f)
}

func (c *Config) applyEnv() error {
	var o overrides
	if err := env.Parse(&o); err != nil {
		return err
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.RetryBudget != nil {
		c.RetryBudget = *o.RetryBudget
	}
	if o.LogLevel != nil {
		c.Log.Level = *o.LogLevel
	}
	if o.LogFormat != nil {
		c.Log.Format = *o.LogFormat
	}
	if o.MetricsFile != nil {
		c.MetricsFile = *o.MetricsFile
	}

	return nil
}

// Validate checks struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// NewLogger builds the configured slog logger writing to w.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.level()}
	if l.Format == "json" || (l.Format == "auto" && !isTerminal(w)) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func (l Log) level() slog.Level {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}

	return lv
}
