package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword creates a salted bcrypt digest of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches the digest.
// Malformed digests compare as false, never as an error.
func CheckPasswordHash(password, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	return err == nil
}
