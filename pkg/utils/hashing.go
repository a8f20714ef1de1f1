package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashAgentKey hashes an agent API key for storage in configuration. Only
// the hash lives in the environment; the plaintext key is handed to the
// external agent platform.
func HashAgentKey(key string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(key), 10)
	return string(bytes), err
}

func CompareAgentKey(hashedKey string, plainKey string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(plainKey))
}

func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
