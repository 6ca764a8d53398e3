package jwt

import "errors"

var (
	// ErrMissingSigningKey indicates absent signing configuration. A
	// missing secret must never silently produce an unsigned token.
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
)
