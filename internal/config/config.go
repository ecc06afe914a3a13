// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/zapponejosh/lunar-calendar-api/internal/i18n"
)

// Config is populated from environment variables by Load.
type Config struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	Env             string        `env:"ENV" envDefault:"development"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/lunar.db"`

	// APIKey guards the birthday endpoints.
	APIKey string `env:"API_KEY"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// MaxRangeDays caps /days/range requests.
	MaxRangeDays int `env:"MAX_RANGE_DAYS" envDefault:"90"`
	// DefaultLang is used when a request names no supported language.
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"zh-Hant"`
}

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

var (
	environments = []string{EnvDevelopment, EnvStaging, EnvProduction}
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"json", "text"}
)

// Load reads a .env file when present, then the process environment.
func Load() (*Config, error) {
	// Missing .env is normal outside development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	errs = append(errs,
		oneOf("ENV", c.Env, environments),
		oneOf("LOG_LEVEL", c.LogLevel, logLevels),
		oneOf("LOG_FORMAT", c.LogFormat, logFormats),
	)
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}
	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}
	if c.MaxRangeDays < 1 || c.MaxRangeDays > 366 {
		errs = append(errs, fmt.Errorf("MAX_RANGE_DAYS must be between 1 and 366, got %d", c.MaxRangeDays))
	}
	if _, ok := i18n.ParseTag(c.DefaultLang); !ok {
		errs = append(errs, fmt.Errorf("DEFAULT_LANG %q is not a supported language", c.DefaultLang))
	}

	// errors.Join drops the nil entries left by passing checks.
	return errors.Join(errs...)
}

func oneOf(name, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of %v, got %q", name, allowed, value)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment reports whether ENV is development.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction reports whether ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}
