package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// keyBytes is the entropy of a generated API key.
const keyBytes = 32

// GenerateKey returns a new URL-safe API key and the digest to persist.
// The plaintext token is never stored.
func GenerateKey() (token, hash string, err error) {
	buf := make([]byte, keyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generate api key: %w", err)
	}
	token = base64.RawURLEncoding.EncodeToString(buf)
	return token, HashKey(token), nil
}

// HashKey returns the hex SHA-256 digest of a token.
func HashKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
