package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.TokenTTL != 0 {
		t.Errorf("TokenTTL = %s, want 0", cfg.TokenTTL)
	}
	if cfg.Orders.StrictTransitions || cfg.Orders.VerifyPricing {
		t.Errorf("order toggles should default to off: %+v", cfg.Orders)
	}
	if !cfg.SeedData {
		t.Errorf("SeedData should default to true")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("ORDER_STRICT_TRANSITIONS", "true")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL = %s", cfg.TokenTTL)
	}
	if !cfg.Orders.StrictTransitions {
		t.Errorf("StrictTransitions not parsed")
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DB_PATH=from-file.db\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("DB_PATH") })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "from-file.db" {
		t.Errorf("DBPath = %q, want from-file.db", cfg.DBPath)
	}
}

func TestLoad_RejectsNegativeTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL", "-1m")
	if _, err := Load(missingEnvFile(t)); err == nil {
		t.Fatalf("expected error for negative TOKEN_TTL")
	}
}

func TestString_MasksSecret(t *testing.T) {
	cfg := &Config{JWTSecret: "super-secret", Port: "8080"}
	if strings.Contains(cfg.String(), "super-secret") {
		t.Fatalf("String leaked the secret: %s", cfg.String())
	}
}
