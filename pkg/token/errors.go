package token

import "errors"

var (
	// ErrInvalidLength is returned by Generate for byte lengths below one.
	ErrInvalidLength = errors.New("token: byte length must be positive")

	// ErrInvalidToken is returned for malformed or undecodable signed tokens.
	ErrInvalidToken = errors.New("token: invalid token format")

	// ErrSignatureInvalid is returned when a signed token's signature does
	// not match its payload.
	ErrSignatureInvalid = errors.New("token: signature mismatch")
)
