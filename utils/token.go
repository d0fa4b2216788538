// utils/token.go
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenGenerator mints opaque QR tokens. It is an interface so tests can
// substitute deterministic ids.
type TokenGenerator interface {
	NewToken() (string, error)
}

// RandomTokenGenerator produces 128-bit hex tokens from crypto/rand.
// Tokens end up in printed QR codes and public URLs, so they must be
// unguessable, not just unique.
type RandomTokenGenerator struct{}

func (RandomTokenGenerator) NewToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
