package auth

import (
	"testing"
	"time"
)

func TestTokenRoundtrip(t *testing.T) {
	tok, err := GenerateToken("secret", "user-123", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken("secret", tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("user id = %q, want user-123", claims.UserID)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	tok, err := GenerateToken("secret", "user-123", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken("other", tok); err == nil {
		t.Error("token validated with the wrong secret")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	tok, err := GenerateToken("secret", "user-123", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken("secret", tok); err == nil {
		t.Error("expired token validated")
	}
}
