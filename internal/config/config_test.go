package config_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"posterseed/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URL", "SUPABASE_URL", "SUPABASE_KEY", "SQLITE_PATH", "SEED_BACKEND",
		"PRODUCTS_TABLE", "CLOUDINERY_KEY", "IMAGE_FOLDER", "REDIS_URL", "METRICS_PORT",
		"SEED_CALL_TIMEOUT", "SEED_LOCK_TTL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Backend != config.BackendPostgREST {
		t.Errorf("Backend = %q, want %q", cfg.Backend, config.BackendPostgREST)
	}
	if cfg.Table != "products" {
		t.Errorf("Table = %q, want products", cfg.Table)
	}
	if cfg.ImageFolder != "etsy peshkuarts" {
		t.Errorf("ImageFolder = %q", cfg.ImageFolder)
	}
	if cfg.CallTimeout != 30*time.Second {
		t.Errorf("CallTimeout = %v, want 30s", cfg.CallTimeout)
	}
	if cfg.MetricsPort != "" {
		t.Errorf("MetricsPort = %q, want empty", cfg.MetricsPort)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/seed.db")
	t.Setenv("CLOUDINERY_KEY", "abc123")
	t.Setenv("SEED_CALL_TIMEOUT", "5s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Backend != config.BackendSQLite {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.SQLitePath != "/tmp/seed.db" {
		t.Errorf("SQLitePath = %q", cfg.SQLitePath)
	}
	if cfg.ImageKey != "abc123" {
		t.Errorf("ImageKey = %q", cfg.ImageKey)
	}
	if cfg.CallTimeout != 5*time.Second {
		t.Errorf("CallTimeout = %v", cfg.CallTimeout)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_BACKEND", "sqlite")
	t.Setenv("SEED_CALL_TIMEOUT", "thirty seconds")

	cfg, err := config.Load()
	if cfg != nil {
		t.Errorf("cfg = %+v, want nil", cfg)
	}

	var cfgErr *config.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
	if cfgErr.Key != "SEED_CALL_TIMEOUT" {
		t.Errorf("Key = %q, want SEED_CALL_TIMEOUT", cfgErr.Key)
	}
	if cfgErr.Reason == "" {
		t.Error("Reason is empty")
	}
}

func TestRequireImageKey(t *testing.T) {
	cfg := &config.Config{}

	var cfgErr *config.ConfigurationError
	if err := cfg.RequireImageKey(); !errors.As(err, &cfgErr) || cfgErr.Key != "CLOUDINERY_KEY" {
		t.Fatalf("err = %v, want ConfigurationError for CLOUDINERY_KEY", err)
	}

	cfg.ImageKey = "abc"
	if err := cfg.RequireImageKey(); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
}

func TestRequireBackend(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantKey string
	}{
		{name: "postgrest missing url", cfg: config.Config{Backend: "postgrest"}, wantKey: "SUPABASE_URL"},
		{name: "postgrest missing key", cfg: config.Config{Backend: "postgrest", SupabaseURL: "http://x"}, wantKey: "SUPABASE_KEY"},
		{name: "postgrest ok", cfg: config.Config{Backend: "postgrest", SupabaseURL: "http://x", SupabaseKey: "k"}},
		{name: "pgx missing dsn", cfg: config.Config{Backend: "pgx"}, wantKey: "DATABASE_URL"},
		{name: "postgres ok", cfg: config.Config{Backend: "postgres", DatabaseURL: "postgres://"}},
		{name: "sqlite ok", cfg: config.Config{Backend: "sqlite", SQLitePath: "x.db"}},
		{name: "unknown backend", cfg: config.Config{Backend: "mongo"}, wantKey: "SEED_BACKEND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.RequireBackend()
			if tt.wantKey == "" {
				if err != nil {
					t.Fatalf("err = %v, want nil", err)
				}
				return
			}
			var cfgErr *config.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err = %v, want ConfigurationError", err)
			}
			if cfgErr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", cfgErr.Key, tt.wantKey)
			}
		})
	}
}
