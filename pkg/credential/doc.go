// Package credential provides salted, iterated password hashing with
// constant-time verification.
//
// Credentials are stored as a single versioned blob: a version byte, a
// 16-byte random salt, and a 32-byte key derived with PBKDF2-HMAC-SHA256.
// The 49-byte buffer is base64 encoded for storage in a text column.
//
// Verification fails closed: undecodable input, truncated blobs, and
// unknown versions all yield false rather than an error, so a corrupted
// row can never surface as anything other than a failed login.
//
// # Usage
//
//	import "github.com/monamour-platform/authkit/pkg/credential"
//
//	hasher, err := credential.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	blob, err := hasher.Hash("s3cret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if hasher.Verify("s3cret", blob) {
//	    // authenticated
//	}
//
// The iteration count can be raised with WithIterations; counts below
// DefaultIterations are rejected. Hashing the same password twice yields
// different blobs because a fresh salt is drawn per call.
package credential
