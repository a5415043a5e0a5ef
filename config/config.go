// Package config loads the idensity configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/revelaction/idensity/parser"
)

// Environment variables read by Load.
const (
	EnvConfig   = "IDENSITY_CONFIG"
	EnvLogLevel = "IDENSITY_LOG_LEVEL"
	EnvWorkers  = "IDENSITY_WORKERS"
	EnvDB       = "IDENSITY_DB"
	EnvEngine   = "IDENSITY_ENGINE"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	LogLevel        string        `yaml:"logLevel"`
	Workers         int           `yaml:"workers"`
	SentenceTimeout time.Duration `yaml:"sentenceTimeout"`
	Engine          EngineConfig  `yaml:"engine"`
	Parser          ParserConfig  `yaml:"parser"`
	Report          ReportConfig  `yaml:"report"`
	Storage         StorageConfig `yaml:"storage"`
}

// EngineConfig selects the proposition engine. An empty Command selects the
// label table engine.
type EngineConfig struct {
	Command []string          `yaml:"command"`
	Labels  map[string]string `yaml:"labels"`
}

type ParserConfig struct {
	Java      string `yaml:"java"`
	ClassPath string `yaml:"classPath"`
	Model     string `yaml:"model"`
	Memory    string `yaml:"memory"`
	WorkDir   string `yaml:"workDir"`
}

type ReportConfig struct {
	// Width of the rule lines. Zero follows the terminal, or 80 when the
	// output is not one.
	Width   int  `yaml:"width"`
	Color   bool `yaml:"color"`
	Verbose bool `yaml:"verbose"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{
		LogLevel:        "info",
		Workers:         1,
		SentenceTimeout: 30 * time.Second,
		Parser: ParserConfig{
			Java:   parser.DefaultJava,
			Model:  parser.DefaultModel,
			Memory: parser.DefaultMemory,
		},
		Report: ReportConfig{
			Color:   true,
			Verbose: true,
		},
	}
}

// Load reads path (if not empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvWorkers, v, err)
		}
		cfg.Workers = n
	}
	if v := os.Getenv(EnvDB); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv(EnvEngine); v != "" {
		cfg.Engine.Command = strings.Fields(v)
	}
	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	if c.SentenceTimeout < 0 {
		return fmt.Errorf("%w: negative sentenceTimeout %s", ErrInvalid, c.SentenceTimeout)
	}
	if c.Report.Width < 0 {
		return fmt.Errorf("%w: negative report width %d", ErrInvalid, c.Report.Width)
	}
	return nil
}

// Level returns the zerolog level of LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return zerolog.ParseLevel(c.LogLevel)
	}
	return zerolog.NoLevel, fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
}

// Stanford returns the upstream parser described by the parser section.
func (c *Config) Stanford() *parser.Stanford {
	s := parser.NewStanford(c.Parser.ClassPath)
	if c.Parser.Java != "" {
		s.Java = c.Parser.Java
	}
	if c.Parser.Model != "" {
		s.Model = c.Parser.Model
	}
	if c.Parser.Memory != "" {
		s.Memory = c.Parser.Memory
	}
	s.WorkDir = c.Parser.WorkDir
	return s
}
