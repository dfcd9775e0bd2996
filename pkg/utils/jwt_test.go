package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := NewAccessToken(secret, userID, "staff", 1)
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}

	identity, err := ParseAccessToken(secret, token)
	if err != nil {
		t.Fatalf("ParseAccessToken failed: %v", err)
	}
	if identity.UserID != userID {
		t.Errorf("user id = %s, want %s", identity.UserID, userID)
	}
	if identity.Role != "staff" {
		t.Errorf("role = %s, want staff", identity.Role)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	token, err := NewAccessToken("right-secret", uuid.New(), "user", 1)
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}

	if _, err := ParseAccessToken("wrong-secret", token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestParseAccessToken_Garbage(t *testing.T) {
	if _, err := ParseAccessToken("secret", "not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := NewAccessToken("secret", uuid.New(), "user", -1)
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}

	if _, err := ParseAccessToken("secret", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}
