package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 3001 {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Fatal("expected development default")
	}
	if cfg.DSN != "" || cfg.MongoURI != "" {
		t.Fatal("expected no backend connection strings by default")
	}
	if cfg.RateLimit.Max != 100 || cfg.RateLimit.Window.Std() != 15*time.Minute {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := `
port: 8080
env: production
dsn: "root:pw@tcp(db:3306)/marketboost?parseTime=True"
rate_limit:
  max: 5
  window: 30s
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.IsDev() {
		t.Fatal("expected production mode")
	}
	if cfg.DSN == "" {
		t.Fatal("expected DSN from file")
	}
	if cfg.RateLimit.Max != 5 || cfg.RateLimit.Window.Std() != 30*time.Second {
		t.Fatalf("unexpected rate limit: %+v", cfg.RateLimit)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("port: 8080\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("env should override file, got port %d", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Fatalf("expected mongo uri from env, got %q", cfg.MongoURI)
	}
	if cfg.RateLimit.Window.Std() != time.Minute {
		t.Fatalf("expected 1m window, got %v", cfg.RateLimit.Window.Std())
	}
}
