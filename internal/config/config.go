package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendPostgREST = "postgrest"
	BackendPostgres  = "postgres"
	BackendPgx       = "pgx"
	BackendSQLite    = "sqlite"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	SupabaseURL string `env:"SUPABASE_URL"`
	SupabaseKey string `env:"SUPABASE_KEY"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"posterseed.db"`
	Backend     string `env:"SEED_BACKEND" envDefault:"postgrest"`
	Table       string `env:"PRODUCTS_TABLE" envDefault:"products"`

	// ImageKit endpoint id; the variable name predates the move off Cloudinary.
	ImageKey    string `env:"CLOUDINERY_KEY"`
	ImageFolder string `env:"IMAGE_FOLDER" envDefault:"etsy peshkuarts"`

	RedisURL    string        `env:"REDIS_URL"`
	MetricsPort string        `env:"METRICS_PORT"`
	CallTimeout time.Duration `env:"SEED_CALL_TIMEOUT" envDefault:"30s"`
	// LockTTL overrides the run lock lifetime; zero derives it from the
	// record count and CallTimeout.
	LockTTL time.Duration `env:"SEED_LOCK_TTL"`
}

// ConfigurationError reports a required setting that is missing or unusable.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("config: %s is required", e.Key)
	}
	return fmt.Sprintf("config: %s: %s", e.Key, e.Reason)
}

// Load reads .env files and the environment. A value that cannot be parsed
// is a *ConfigurationError naming the variable.
func Load() (*Config, error) {
	// .env at the repository root when run via `go run ./cmd/...` from a cmd dir
	_ = godotenv.Load("../../.env")
	// then the working directory
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, parseError(err)
	}
	return cfg, nil
}

func parseError(err error) error {
	var aggErr env.AggregateError
	if errors.As(err, &aggErr) {
		for _, e := range aggErr.Errors {
			var parseErr env.ParseError
			if errors.As(e, &parseErr) {
				return &ConfigurationError{Key: envKey(parseErr.Name), Reason: parseErr.Err.Error()}
			}
		}
	}
	return &ConfigurationError{Key: "environment", Reason: err.Error()}
}

// envKey maps a Config field name back to its variable.
func envKey(field string) string {
	if f, ok := reflect.TypeOf(Config{}).FieldByName(field); ok {
		if tag := f.Tag.Get("env"); tag != "" {
			return tag
		}
	}
	return field
}

// RequireImageKey fails when the image hosting key is not set; product URLs
// cannot be built without it.
func (c *Config) RequireImageKey() error {
	if c.ImageKey == "" {
		return &ConfigurationError{Key: "CLOUDINERY_KEY"}
	}
	return nil
}

// RequireBackend checks that the settings the selected backend needs are present.
func (c *Config) RequireBackend() error {
	switch c.Backend {
	case BackendPostgREST:
		if c.SupabaseURL == "" {
			return &ConfigurationError{Key: "SUPABASE_URL"}
		}
		if c.SupabaseKey == "" {
			return &ConfigurationError{Key: "SUPABASE_KEY"}
		}
	case BackendPostgres, BackendPgx:
		if c.DatabaseURL == "" {
			return &ConfigurationError{Key: "DATABASE_URL"}
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return &ConfigurationError{Key: "SQLITE_PATH"}
		}
	default:
		return &ConfigurationError{Key: "SEED_BACKEND", Reason: fmt.Sprintf("unknown backend %q", c.Backend)}
	}
	return nil
}
