// Package jwt mints signed, time-boxed bearer tokens for stateless API
// authentication.
//
// Tokens are HS256-signed compact JWTs built on github.com/golang-jwt/jwt.
// The claim set carries the subject (user id in string form), the email, a
// name-identifier duplicating the subject, and one entry per role in input
// order, plus issuer, audience, issued-at, and expiry.
//
// Configuration is three strings (signing key, issuer, audience) and a
// TTL. An absent signing key is fatal at construction and at issuance;
// there is no silent downgrade to an unsigned token.
//
// # Usage
//
//	import "github.com/monamour-platform/authkit/pkg/jwt"
//
//	issuer, err := jwt.NewIssuer(signingKey, "monamour", "monamour-api")
//	if err != nil {
//	    log.Fatal(err) // misconfiguration
//	}
//
//	token, expiresAt, err := issuer.IssueToken(42, "user@example.com", roles)
//
// The issuer keeps no state: revocation, if needed, is an external
// concern such as a deny-list keyed by token id. Verifying inbound API
// tokens belongs to the consumer's bearer middleware; Parse is provided
// for in-process validation and tests.
package jwt
