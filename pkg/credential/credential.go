package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Blob layout constants. Version 1 fixes the derivation parameters, so the
// blob carries only the version byte, the salt, and the derived key.
const (
	Version = 1

	SaltSize = 16
	KeySize  = 32

	blobSize = 1 + SaltSize + KeySize

	// DefaultIterations is the PBKDF2 iteration count for version 1 blobs.
	// Also the enforced minimum: weaker counts are rejected at construction.
	DefaultIterations = 100_000
)

// Hasher derives and verifies password credentials using PBKDF2-HMAC-SHA256.
// The zero value is not usable; construct with New.
type Hasher struct {
	iterations int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithIterations sets the PBKDF2 iteration count. Values below
// DefaultIterations are rejected by New.
func WithIterations(n int) Option {
	return func(h *Hasher) {
		h.iterations = n
	}
}

// New creates a Hasher with the given options.
func New(opts ...Option) (*Hasher, error) {
	h := &Hasher{
		iterations: DefaultIterations,
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.iterations < DefaultIterations {
		return nil, ErrWeakIterations
	}

	return h, nil
}

// Hash derives a credential blob for the given password and returns its
// base64 encoding. A fresh random salt is drawn on every call, so hashing
// the same password twice yields different blobs. Empty passwords are
// hashed like any other input.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, KeySize, sha256.New)

	blob := make([]byte, 0, blobSize)
	blob = append(blob, Version)
	blob = append(blob, salt...)
	blob = append(blob, key...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Verify reports whether password matches the stored credential blob.
// Malformed input (bad base64, truncated blob, unknown version) fails
// closed: the result is false, never an error. The key comparison is
// constant-time to avoid leaking the position of the first mismatch.
func (h *Hasher) Verify(password, stored string) bool {
	blob, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return false
	}

	if len(blob) < blobSize || blob[0] != Version {
		return false
	}

	salt := blob[1 : 1+SaltSize]
	key := blob[1+SaltSize : blobSize]

	derived := pbkdf2.Key([]byte(password), salt, h.iterations, KeySize, sha256.New)

	return subtle.ConstantTimeCompare(derived, key) == 1
}

// DecodeBlob splits a stored credential into its version, salt, and derived
// key. Unlike Verify it reports what is wrong, which is useful for
// diagnostics and migrations; authorization paths should rely on Verify.
func DecodeBlob(stored string) (version byte, salt, key []byte, err error) {
	blob, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return 0, nil, nil, errors.Join(ErrMalformedBlob, err)
	}

	if len(blob) < blobSize {
		return 0, nil, nil, ErrMalformedBlob
	}

	if blob[0] != Version {
		return 0, nil, nil, ErrUnsupportedVersion
	}

	return blob[0], blob[1 : 1+SaltSize], blob[1+SaltSize : blobSize], nil
}
