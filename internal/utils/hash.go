package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from the given plaintext using
// the provided work factor. The hash embeds its own random salt, so the same
// plaintext produces a different hash on every call.
//
// Hashing is performed exactly once, at credential-creation time; comparison
// must always go through [CheckPassword], never by re-hashing and comparing
// strings, or the embedded salts will not match.
func HashPassword(plaintext string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// bcrypt performs the comparison in constant time relative to the hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
