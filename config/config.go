// Package config loads the quintet CLI configuration from YAML.
//
// Missing keys keep their defaults, unknown keys are rejected, and the
// resolved values are checked with go-playground/validator tags.
//
// Example:
//
//	words: data/wordle-all.txt
//	fold_case: false
//	workers: 0
//	output:
//	  path: ""
//	  format: tsv
//	log:
//	  level: info
//	  format: auto
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure returned by Validate and Load.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	// Words is the path of the word list. It may be empty in the file and
	// supplied on the command line instead.
	Words string `yaml:"words"`

	// FoldCase lowercases dictionary lines before filtering.
	FoldCase bool `yaml:"fold_case"`

	// Workers for the exhaustive search; 0 means one per CPU.
	Workers int `yaml:"workers" validate:"gte=0"`

	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig selects where and how results are written.
type OutputConfig struct {
	// Path of the result file; empty writes to stdout.
	Path string `yaml:"path"`

	Format string `yaml:"format" validate:"oneof=tsv csv yaml"`
}

// LogConfig selects the zap logger level and encoding.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`

	// Format is console, json, or auto (console on a terminal, json otherwise).
	Format string `yaml:"format" validate:"oneof=auto console json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Workers: 0,
		Output:  OutputConfig{Format: "tsv"},
		Log:     LogConfig{Level: "info", Format: "auto"},
	}
}

var validate = validator.New()

// Validate checks field constraints and returns an error wrapping ErrInvalid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Load reads the YAML file at path on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %q: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML bytes on top of Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
