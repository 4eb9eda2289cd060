package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_ProducesBcryptDigest(t *testing.T) {
	digest, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Errorf("expected bcrypt digest, got %q", digest)
	}
	if digest == "s3cret-password" {
		t.Error("digest must not equal the plain-text password")
	}
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("expected different digests for the same password (random salt)")
	}
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !CheckPassword("correct-horse", digest) {
		t.Error("expected matching password to verify")
	}
	if CheckPassword("battery-staple", digest) {
		t.Error("expected wrong password to fail verification")
	}
	if CheckPassword("correct-horse", "not-a-digest") {
		t.Error("expected malformed digest to fail verification")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects passwords longer than 72 bytes
	if _, err := HashPassword(strings.Repeat("x", 100)); err == nil {
		t.Error("expected error for over-long password")
	}
}
