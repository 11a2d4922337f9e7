package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("test_secret_key", time.Hour)

	signed, err := tokens.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	userID, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user-123, got %q", userID)
	}
}

func TestTokenExpired(t *testing.T) {
	tokens := NewTokenService("test_secret_key", -time.Hour)

	signed, err := tokens.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := tokens.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tokens := NewTokenService("test_secret_key", time.Hour)
	other := NewTokenService("different_secret", time.Hour)

	signed, err := tokens.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := other.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	tokens := NewTokenService("test_secret_key", time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		if _, err := tokens.Verify(tokenString); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for %q, got %v", tokenString, err)
		}
	}
}

func TestTokenWithoutExpiry(t *testing.T) {
	tokens := NewTokenService("test_secret_key", time.Hour)

	// Sign a token with the right secret but no exp claim.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
	})
	signed, err := raw.SignedString([]byte("test_secret_key"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := tokens.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for token without expiry, got %v", err)
	}
}

func TestTokenUnsignedAlgorithm(t *testing.T) {
	tokens := NewTokenService("test_secret_key", time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := tokens.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for alg=none token, got %v", err)
	}
}
