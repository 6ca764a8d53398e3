// Package token generates bearer tokens for one-time account flows.
//
// Two families are provided:
//
//   - Opaque tokens (Generate, GenerateDefault): random base64url strings
//     with no embedded structure, used for email-verification,
//     password-reset, and remember-me values whose lifecycle lives in the
//     persistence layer.
//   - Signed tokens (Sign, Parse): compact JSON payloads with a truncated
//     HMAC-SHA256 signature, format base64url(payload).base64url(signature),
//     for short-lived links that must carry data without a database lookup.
//
// The 8-byte truncated signature suits typical short-lived application
// tokens; it is not strong enough for high-value or long-lived credentials.
//
// # Usage
//
//	import "github.com/monamour-platform/authkit/pkg/token"
//
//	// Opaque bearer value for a reset link.
//	tok, err := token.GenerateDefault()
//
//	// Signed payload for a reset link that self-describes.
//	type resetPayload struct {
//	    UserID int64 `json:"uid"`
//	    Exp    int64 `json:"exp"`
//	}
//	signed, err := token.Sign(resetPayload{UserID: 42, Exp: exp}, secret)
//	p, err := token.Parse[resetPayload](signed, secret)
//
// Parse returns ErrInvalidToken for malformed input and ErrSignatureInvalid
// for signature mismatches, both comparable with errors.Is.
package token
