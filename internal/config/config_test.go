package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Address() != ":8080" {
		t.Errorf("expected address :8080, got %q", cfg.Address())
	}
	if cfg.JWTSecret == "" {
		t.Error("expected a fallback JWT secret")
	}
	if cfg.CacheTTLSec != 30 {
		t.Errorf("expected default cache TTL 30, got %d", cfg.CacheTTLSec)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHOPLEDGER_PORT", "9090")
	t.Setenv("SHOPLEDGER_DATABASE_URL", "postgres://localhost/shopledger")
	t.Setenv("SHOPLEDGER_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/shopledger" {
		t.Errorf("unexpected database URL: %q", cfg.DatabaseURL)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Errorf("unexpected JWT secret: %q", cfg.JWTSecret)
	}
}
