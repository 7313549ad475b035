package core

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// signingKeyLen is the size in bytes of a generated session secret.
const signingKeyLen = 24

// SigningKey is the session-signing secret. It is initialised once at
// startup and never read by request handling.
type SigningKey []byte

var randRead = rand.Read

// NewSigningKey decodes the configured hex secret, or generates a random
// key when the config leaves it empty.
func NewSigningKey(hexKey string) (SigningKey, error) {
	if hexKey != "" {
		key, err := hex.DecodeString(hexKey)
		if err != nil {
			return nil, fmt.Errorf("invalid secretKey in config: %w", err)
		}
		return SigningKey(key), nil
	}

	key := make([]byte, signingKeyLen)
	if _, err := randRead(key); err != nil {
		return nil, fmt.Errorf("could not generate signing key: %w", err)
	}
	return SigningKey(key), nil
}
