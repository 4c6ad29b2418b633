package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// chdirWithConfig creates a temp working directory containing config.yaml
// with the given content and makes it the current directory for the test.
func chdirWithConfig(t *testing.T, content []byte) {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644); err != nil {
		t.Fatalf("failed to write config.yaml: %v", err)
	}

	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}

// clearEnv unsets environment variables that would interfere with defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BIND_ADDR", "PORT", "ENVIRONMENT", "MIGRATIONS_PATH", "SESSION_SECRET",
		"PGHOST", "PGPORT", "PGUSER", "PGPASSWORD", "PGDATABASE",
		"PGMAX_CONNECTIONS", "PGSSLMODE",
	} {
		// t.Setenv registers cleanup that restores the original value.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdirWithConfig(t, []byte("env: local\n"))

	cfg, err := Load("test-version")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Version != "test-version" {
		t.Errorf("Version = %q, want %q", cfg.Version, "test-version")
	}
	if cfg.BindAddr != "127.0.0.1" {
		t.Errorf("BindAddr = %q, want %q", cfg.BindAddr, "127.0.0.1")
	}
	if cfg.Port != "8084" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8084")
	}
	if cfg.Env != "local" {
		t.Errorf("Env = %q, want %q", cfg.Env, "local")
	}
	if cfg.MigrationsPath != "migrations" {
		t.Errorf("MigrationsPath = %q, want %q", cfg.MigrationsPath, "migrations")
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}
	if cfg.Database.Database != "statusboard" {
		t.Errorf("Database.Database = %q, want %q", cfg.Database.Database, "statusboard")
	}
	if cfg.Database.MaxConnections != 10 {
		t.Errorf("Database.MaxConnections = %d, want %d", cfg.Database.MaxConnections, 10)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Errorf("Database.SSLMode = %q, want %q", cfg.Database.SSLMode, "disable")
	}
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)

	fixture := map[string]any{
		"bind_addr":       "0.0.0.0",
		"port":            "9090",
		"env":             "production",
		"migrations_path": "/srv/statusboard/migrations",
		"database": map[string]any{
			"host":            "db.internal",
			"port":            5433,
			"user":            "boardsvc",
			"database":        "boarddb",
			"max_connections": 25,
			"ssl_mode":        "require",
		},
	}
	content, err := yaml.Marshal(fixture)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	chdirWithConfig(t, content)

	cfg, err := Load("v1.2.3")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.BindAddr != "0.0.0.0" {
		t.Errorf("BindAddr = %q, want %q", cfg.BindAddr, "0.0.0.0")
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want %q", cfg.Env, "production")
	}
	if cfg.MigrationsPath != "/srv/statusboard/migrations" {
		t.Errorf("MigrationsPath = %q", cfg.MigrationsPath)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "db.internal")
	}
	if cfg.Database.Port != 5433 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5433)
	}
	if cfg.Database.User != "boardsvc" {
		t.Errorf("Database.User = %q, want %q", cfg.Database.User, "boardsvc")
	}
	if cfg.Database.MaxConnections != 25 {
		t.Errorf("Database.MaxConnections = %d, want %d", cfg.Database.MaxConnections, 25)
	}
	if cfg.Database.SSLMode != "require" {
		t.Errorf("Database.SSLMode = %q, want %q", cfg.Database.SSLMode, "require")
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	clearEnv(t)

	fixture := map[string]any{
		"port": "9090",
		"database": map[string]any{
			"host": "db.internal",
		},
	}
	content, err := yaml.Marshal(fixture)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	chdirWithConfig(t, content)

	t.Setenv("PORT", "7070")
	t.Setenv("PGHOST", "override.internal")
	t.Setenv("PGPASSWORD", "s3cret")
	t.Setenv("SESSION_SECRET", "session-pass")

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7070" {
		t.Errorf("Port = %q, want env override %q", cfg.Port, "7070")
	}
	if cfg.Database.Host != "override.internal" {
		t.Errorf("Database.Host = %q, want env override %q", cfg.Database.Host, "override.internal")
	}
	if cfg.Database.Password != "s3cret" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "s3cret")
	}
	if cfg.SessionSecret != "session-pass" {
		t.Errorf("SessionSecret = %q, want %q", cfg.SessionSecret, "session-pass")
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})

	if _, err := Load("test"); err == nil {
		t.Fatal("Load succeeded without config.yaml, want error")
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{BindAddr: "127.0.0.1", Port: "8084"}
	if got := cfg.Addr(); got != "127.0.0.1:8084" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:8084")
	}
}

func TestConnectionString(t *testing.T) {
	db := &DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "statusboard",
		Password: "pw",
		Database: "statusboard",
		SSLMode:  "disable",
	}
	want := "host=localhost port=5432 user=statusboard password=pw dbname=statusboard sslmode=disable"
	if got := db.ConnectionString(); got != want {
		t.Errorf("ConnectionString() = %q, want %q", got, want)
	}
}
