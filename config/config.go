// Package config loads the phrasal settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap/zapcore"

	"github.com/revelaction/phrasal/render"
)

// DefaultFile is the config file looked up in the user config directory.
const DefaultFile = "phrasal/config.yaml"

// Config holds the settings shared by the commands. Command line flags
// override them.
type Config struct {
	// DocPath is a directory of JSON docs or a SQLite database file.
	DocPath string `yaml:"doc_path" env:"PHRASAL_DOC_PATH" env-default:""`

	// Lexicon is a sentiment lexicon file replacing the embedded one.
	Lexicon string `yaml:"lexicon" env:"PHRASAL_LEXICON" env-default:""`

	// Analysis
	Workers int  `yaml:"workers" env:"PHRASAL_WORKERS" env-default:"4"`
	Strict  bool `yaml:"strict" env:"PHRASAL_STRICT" env-default:"false"`

	// Output
	NoColor bool   `yaml:"no_color" env:"PHRASAL_NO_COLOR" env-default:"false"`
	Prefix  bool   `yaml:"prefix" env:"PHRASAL_PREFIX" env-default:"false"`
	Format  string `yaml:"format" env:"PHRASAL_FORMAT" env-default:"all"`

	LogLevel string `yaml:"log_level" env:"PHRASAL_LOG_LEVEL" env-default:"warn"`
}

// Load reads the config file at path with environment variable overrides.
// With an empty path the default file is used if it exists, otherwise only
// the environment is read.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = defaultPath()
	}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Level returns the zap level of LogLevel.
func (c *Config) Level() zapcore.Level {
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return l
}

func (c *Config) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	if !slices.Contains(render.SupportedFormats(), c.Format) {
		return fmt.Errorf("unknown format %q", c.Format)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// defaultPath returns the default config file if it exists.
func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	p := filepath.Join(dir, DefaultFile)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}
