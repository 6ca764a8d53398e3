package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monamour-platform/authkit/pkg/jwt"
)

const testSigningKey = "test-signing-key-32-chars-long!!"

func TestNewIssuer(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty signing key", func(t *testing.T) {
		t.Parallel()

		issuer, err := jwt.NewIssuer("", "iss", "aud")
		require.ErrorIs(t, err, jwt.ErrMissingSigningKey)
		assert.Nil(t, issuer)
	})

	t.Run("creates issuer with valid key", func(t *testing.T) {
		t.Parallel()

		issuer, err := jwt.NewIssuer(testSigningKey, "iss", "aud")
		require.NoError(t, err)
		require.NotNil(t, issuer)
	})

	t.Run("from config", func(t *testing.T) {
		t.Parallel()

		cfg := jwt.Config{
			SigningKey: testSigningKey,
			Issuer:     "monamour",
			Audience:   "monamour-api",
			TTL:        15 * time.Minute,
		}

		issuer, err := jwt.NewIssuerFromConfig(cfg)
		require.NoError(t, err)
		require.NotNil(t, issuer)

		_, err = jwt.NewIssuerFromConfig(jwt.Config{Issuer: "monamour"})
		assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)
	})
}

func TestIssuer_IssueToken(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return fixed }

	t.Run("claims round trip", func(t *testing.T) {
		t.Parallel()

		issuer, err := jwt.NewIssuer(testSigningKey, "monamour", "monamour-api",
			jwt.WithTTL(30*time.Minute),
			jwt.WithClock(clock),
		)
		require.NoError(t, err)

		roles := []string{"user", "admin"}
		token, expiresAt, err := issuer.IssueToken(42, "user@example.com", roles)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		assert.Equal(t, fixed.Add(30*time.Minute), expiresAt)

		claims, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "42", claims.Subject)
		assert.Equal(t, "42", claims.NameID)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, roles, claims.Roles, "role order is preserved")
		assert.Equal(t, "monamour", claims.Issuer)
		assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("default ttl is one hour", func(t *testing.T) {
		t.Parallel()

		issuer, err := jwt.NewIssuer(testSigningKey, "iss", "aud", jwt.WithClock(clock))
		require.NoError(t, err)

		_, expiresAt, err := issuer.IssueToken(1, "a@b.c", nil)
		require.NoError(t, err)
		assert.Equal(t, fixed.Add(time.Hour), expiresAt)
	})

	t.Run("empty role set omitted", func(t *testing.T) {
		t.Parallel()

		issuer, err := jwt.NewIssuer(testSigningKey, "iss", "aud", jwt.WithClock(clock))
		require.NoError(t, err)

		token, _, err := issuer.IssueToken(7, "a@b.c", nil)
		require.NoError(t, err)

		claims, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Empty(t, claims.Roles)
	})
}

func TestIssuer_Parse(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("rejects wrong key", func(t *testing.T) {
		t.Parallel()

		issuer, err := jwt.NewIssuer(testSigningKey, "iss", "aud")
		require.NoError(t, err)
		other, err := jwt.NewIssuer("another-signing-key-32-chars!!!!", "iss", "aud")
		require.NoError(t, err)

		token, _, err := issuer.IssueToken(1, "a@b.c", nil)
		require.NoError(t, err)

		_, err = other.Parse(token)
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		t.Parallel()

		current := fixed
		issuer, err := jwt.NewIssuer(testSigningKey, "iss", "aud",
			jwt.WithTTL(time.Minute),
			jwt.WithClock(func() time.Time { return current }),
		)
		require.NoError(t, err)

		token, _, err := issuer.IssueToken(1, "a@b.c", nil)
		require.NoError(t, err)

		current = fixed.Add(2 * time.Minute)
		_, err = issuer.Parse(token)
		assert.Error(t, err)
	})

	t.Run("rejects wrong audience", func(t *testing.T) {
		t.Parallel()

		issuer, err := jwt.NewIssuer(testSigningKey, "iss", "aud")
		require.NoError(t, err)
		strict, err := jwt.NewIssuer(testSigningKey, "iss", "other-aud")
		require.NoError(t, err)

		token, _, err := issuer.IssueToken(1, "a@b.c", nil)
		require.NoError(t, err)

		_, err = strict.Parse(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()

		issuer, err := jwt.NewIssuer(testSigningKey, "iss", "aud")
		require.NoError(t, err)

		_, err = issuer.Parse("not.a.jwt")
		assert.Error(t, err)
	})
}
