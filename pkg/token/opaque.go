package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// DefaultByteLength is the entropy used by GenerateDefault. At 32 bytes the
// birthday bound makes collisions cryptographically negligible.
const DefaultByteLength = 32

// Generate returns a URL-safe opaque bearer token built from byteLength
// bytes of cryptographically secure randomness. The output is base64url
// without padding, so it matches ^[A-Za-z0-9_-]+$ and can be embedded in
// links and cookies as-is.
func Generate(byteLength int) (string, error) {
	if byteLength < 1 {
		return "", ErrInvalidLength
	}

	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateDefault returns an opaque token with DefaultByteLength bytes of
// entropy. Intended for email-verification, password-reset, and
// remember-me values.
func GenerateDefault() (string, error) {
	return Generate(DefaultByteLength)
}
