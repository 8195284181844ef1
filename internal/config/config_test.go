package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdirTemp runs the test from a fresh directory so the optional config
// file lookup is isolated from the repository tree.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
	return dir
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config", "config.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/jugueteria_test")
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	setRequiredEnv(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, got %v", cfg.TokenTTL)
	}
	if cfg.LoginMaxAttempts != 10 {
		t.Errorf("expected 10 login attempts, got %d", cfg.LoginMaxAttempts)
	}
	if cfg.LoginWindow != 15*time.Minute {
		t.Errorf("expected 15m login window, got %v", cfg.LoginWindow)
	}
	if cfg.StorageTimeout != 5*time.Second {
		t.Errorf("expected 5s storage timeout, got %v", cfg.StorageTimeout)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Errorf("unexpected secret %q", cfg.JWTSecret)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("expected default redis address, got %s", cfg.RedisAddr)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	chdirTemp(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/jugueteria_test")

	_, err := Load(context.Background())
	if !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	chdirTemp(t)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "")

	_, err := Load(context.Background())
	if !errors.Is(err, ErrMissingDSN) {
		t.Errorf("expected ErrMissingDSN, got %v", err)
	}
}

func TestLoad_FileTunables(t *testing.T) {
	dir := chdirTemp(t)
	setRequiredEnv(t)
	writeConfigFile(t, dir, `
app:
  port: 9000
  log_level: debug
  cors_origins:
    - http://localhost:5173
auth:
  bcrypt_cost: 12
  token_ttl: 1h
  login_max_attempts: 3
  login_window: 5m
storage:
  timeout: 2s
`)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("expected port 9000 from file, got %s", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("expected bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected 1h token ttl, got %v", cfg.TokenTTL)
	}
	if cfg.LoginMaxAttempts != 3 {
		t.Errorf("expected 3 login attempts, got %d", cfg.LoginMaxAttempts)
	}
	if cfg.LoginWindow != 5*time.Minute {
		t.Errorf("expected 5m login window, got %v", cfg.LoginWindow)
	}
	if cfg.StorageTimeout != 2*time.Second {
		t.Errorf("expected 2s storage timeout, got %v", cfg.StorageTimeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	setRequiredEnv(t)
	t.Setenv("PORT", "7777")
	writeConfigFile(t, dir, `
app:
  port: 9000
`)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7777" {
		t.Errorf("environment must win over the file, got port %s", cfg.Port)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	dir := chdirTemp(t)
	setRequiredEnv(t)
	writeConfigFile(t, dir, `
auth:
  token_ttl: not-a-duration
`)

	if _, err := Load(context.Background()); err == nil {
		t.Error("expected an error for a malformed duration")
	}
}
