package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateVerificationToken returns a random 32-byte hex string used as an
// email verification credential.
func GenerateVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
