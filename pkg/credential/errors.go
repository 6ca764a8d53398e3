package credential

import "errors"

var (
	// ErrWeakIterations is returned when the configured iteration count is
	// below the version 1 minimum.
	ErrWeakIterations = errors.New("credential: iteration count below minimum")

	// ErrMalformedBlob is returned by DecodeBlob for undecodable or
	// truncated credential blobs.
	ErrMalformedBlob = errors.New("credential: malformed blob")

	// ErrUnsupportedVersion is returned by DecodeBlob when the version byte
	// is not recognized.
	ErrUnsupportedVersion = errors.New("credential: unsupported blob version")
)
