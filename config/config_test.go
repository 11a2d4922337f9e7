package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != "5000" {
		t.Errorf("expected default port 5000, got %q", cfg.Server.Port)
	}
	if cfg.Database.URI != "mongodb://localhost:27017" {
		t.Errorf("unexpected default Mongo URI %q", cfg.Database.URI)
	}
	if cfg.Database.DatabaseName != "shadownotes" {
		t.Errorf("unexpected default database name %q", cfg.Database.DatabaseName)
	}
	if cfg.Auth.TokenExpiry != 24*time.Hour {
		t.Errorf("expected 24h default token expiry, got %v", cfg.Auth.TokenExpiry)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("expected default bcrypt cost 10, got %d", cfg.Auth.BcryptCost)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("MONGO_DB", "shadownotes_test")
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("JWT_EXPIRATION_TIME", "1h30m")
	t.Setenv("BCRYPT_COST", "12")

	cfg := Load()

	if cfg.Server.Port != "9999" {
		t.Errorf("expected port 9999, got %q", cfg.Server.Port)
	}
	if cfg.Database.DatabaseName != "shadownotes_test" {
		t.Errorf("expected database shadownotes_test, got %q", cfg.Database.DatabaseName)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Error("JWT secret not picked up from environment")
	}
	if cfg.Auth.TokenExpiry != 90*time.Minute {
		t.Errorf("expected 1h30m token expiry, got %v", cfg.Auth.TokenExpiry)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("expected bcrypt cost 12, got %d", cfg.Auth.BcryptCost)
	}
}

// Older deployments exported the expiry as plain seconds.
func TestTokenExpiryInSeconds(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_TIME", "86400")

	cfg := Load()
	if cfg.Auth.TokenExpiry != 24*time.Hour {
		t.Errorf("expected 86400s to parse as 24h, got %v", cfg.Auth.TokenExpiry)
	}
}
