// Package config loads runtime configuration from a YAML file with
// environment variable overrides. Backend selection is driven by presence:
// a MySQL DSN wins, then a Mongo URI, then the in-memory store.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort            = 3001
	defaultEnv             = "development"
	defaultMongoDatabase   = "marketboost"
	defaultRateLimitMax    = 100
	defaultRateLimitWindow = Duration(15 * time.Minute)
)

// Duration parses "15m"-style values from both YAML and env.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// RateLimitConfig tunes the fixed-window limiter on /api paths.
type RateLimitConfig struct {
	Max    int      `yaml:"max"    env:"RATE_LIMIT_MAX"`
	Window Duration `yaml:"window" env:"RATE_LIMIT_WINDOW"`
}

// AppConfig holds runtime startup configuration.
type AppConfig struct {
	Port           int             `yaml:"port"            env:"PORT"`
	Env            string          `yaml:"env"             env:"APP_ENV"`
	DSN            string          `yaml:"dsn"             env:"DATABASE_DSN"`
	MongoURI       string          `yaml:"mongo_uri"       env:"MONGODB_URI"`
	MongoDatabase  string          `yaml:"mongo_database"  env:"MONGODB_DATABASE"`
	RedisURL       string          `yaml:"redis_url"       env:"REDIS_URL"`
	AllowedOrigins []string        `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" envSeparator:","`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// Load reads the YAML file at path (missing file is fine, defaults apply)
// and then applies environment overrides. Env wins over file.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:          defaultPort,
		Env:           defaultEnv,
		MongoDatabase: defaultMongoDatabase,
		RateLimit: RateLimitConfig{
			Max:    defaultRateLimitMax,
			Window: defaultRateLimitWindow,
		},
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.RateLimit.Max <= 0 {
		cfg.RateLimit.Max = defaultRateLimitMax
	}
	if cfg.RateLimit.Window <= 0 {
		cfg.RateLimit.Window = defaultRateLimitWindow
	}

	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }
