package jwt

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed claim set carried by issued tokens: the registered
// claims plus the principal's email, a name-identifier duplicating the
// subject, and the role names in input order.
type Claims struct {
	Email  string   `json:"email,omitempty"`
	NameID string   `json:"nameid,omitempty"`
	Roles  []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Issuer mints HS256-signed bearer tokens for stateless API
// authentication. It performs no persistence and no revocation tracking;
// a deny-list, if needed, is the consumer's concern.
type Issuer struct {
	signingKey []byte
	issuer     string
	audience   string
	ttl        time.Duration
	now        func() time.Time
}

// IssuerOption configures an Issuer.
type IssuerOption func(*Issuer)

// WithTTL sets the token lifetime (default: 60m).
func WithTTL(ttl time.Duration) IssuerOption {
	return func(i *Issuer) {
		if ttl > 0 {
			i.ttl = ttl
		}
	}
}

// WithClock overrides the wall clock, used by tests for deterministic
// expiry.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) {
		i.now = now
	}
}

// NewIssuer creates an Issuer. An empty signing key is a configuration
// error: issuing an unsigned or weakly-signed token is worse than failing
// the request, so the constructor refuses rather than degrading.
func NewIssuer(signingKey, issuer, audience string, opts ...IssuerOption) (*Issuer, error) {
	if signingKey == "" {
		return nil, ErrMissingSigningKey
	}

	i := &Issuer{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		ttl:        time.Hour,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

// NewIssuerFromConfig creates an Issuer from environment-driven
// configuration.
func NewIssuerFromConfig(cfg Config, opts ...IssuerOption) (*Issuer, error) {
	return NewIssuer(cfg.SigningKey, cfg.Issuer, cfg.Audience, append([]IssuerOption{WithTTL(cfg.TTL)}, opts...)...)
}

// IssueToken mints a token for the principal and returns the compact JWT
// along with its absolute expiry. The subject and name-identifier both
// carry the user id in string form; roles keep their input order.
func (i *Issuer) IssueToken(userID int64, email string, roles []string) (string, time.Time, error) {
	if len(i.signingKey) == 0 {
		return "", time.Time{}, ErrMissingSigningKey
	}

	now := i.now().UTC()
	expiresAt := now.Add(i.ttl)
	subject := strconv.FormatInt(userID, 10)

	claims := Claims{
		Email:  email,
		NameID: subject,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Parse validates a token issued by this Issuer and returns its claims.
// Validation of inbound API traffic normally belongs to the consumer's
// bearer middleware; Parse exists for in-process checks and tests. Only
// HS256 is accepted.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return i.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithTimeFunc(func() time.Time { return i.now() }),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
