package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way bcrypt digest from the given plain-text
// password using the default adaptive cost.
//
// The returned digest embeds its own salt and cost parameters and is the only
// password representation that may be persisted.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether the plain-text password matches the stored
// bcrypt digest. The comparison is performed by bcrypt itself and is safe
// against timing attacks.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
