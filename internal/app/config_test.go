package app

import "testing"

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when AUTH_SECRET is absent")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TokenTTL.Minutes() != 60 {
		t.Fatalf("token ttl default: got %v", cfg.TokenTTL)
	}
	if cfg.AppAddr != ":8080" {
		t.Fatalf("app addr default: got %q", cfg.AppAddr)
	}
	if cfg.IsProduction() {
		t.Fatal("development must not report production")
	}
}

func TestLoadConfigRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "0s")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for zero token ttl")
	}
}
