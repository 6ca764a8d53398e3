package credential_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monamour-platform/authkit/pkg/credential"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates hasher with defaults", func(t *testing.T) {
		t.Parallel()

		hasher, err := credential.New()
		require.NoError(t, err)
		require.NotNil(t, hasher)
	})

	t.Run("accepts stronger iteration count", func(t *testing.T) {
		t.Parallel()

		hasher, err := credential.New(credential.WithIterations(200_000))
		require.NoError(t, err)
		require.NotNil(t, hasher)
	})

	t.Run("rejects weak iteration count", func(t *testing.T) {
		t.Parallel()

		hasher, err := credential.New(credential.WithIterations(1000))
		require.ErrorIs(t, err, credential.ErrWeakIterations)
		assert.Nil(t, hasher)
	})
}

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	hasher, err := credential.New()
	require.NoError(t, err)

	t.Run("round trip verifies", func(t *testing.T) {
		t.Parallel()

		blob, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)

		assert.True(t, hasher.Verify("correct horse battery staple", blob))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		t.Parallel()

		blob, err := hasher.Hash("password-one")
		require.NoError(t, err)

		assert.False(t, hasher.Verify("password-two", blob))
	})

	t.Run("empty password round trips", func(t *testing.T) {
		t.Parallel()

		blob, err := hasher.Hash("")
		require.NoError(t, err)

		assert.True(t, hasher.Verify("", blob))
		assert.False(t, hasher.Verify("not empty", blob))
	})

	t.Run("salt randomization yields distinct blobs", func(t *testing.T) {
		t.Parallel()

		first, err := hasher.Hash("same password")
		require.NoError(t, err)
		second, err := hasher.Hash("same password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, hasher.Verify("same password", first))
		assert.True(t, hasher.Verify("same password", second))
	})

	t.Run("blob has expected layout", func(t *testing.T) {
		t.Parallel()

		blob, err := hasher.Hash("layout check")
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(blob)
		require.NoError(t, err)
		require.Len(t, raw, 1+credential.SaltSize+credential.KeySize)
		assert.Equal(t, byte(credential.Version), raw[0])
	})
}

func TestHasher_Verify_FailsClosed(t *testing.T) {
	t.Parallel()

	hasher, err := credential.New()
	require.NoError(t, err)

	tests := []struct {
		name   string
		stored string
	}{
		{name: "not base64", stored: "!!not-base64!!"},
		{name: "empty string", stored: ""},
		{name: "truncated blob", stored: base64.StdEncoding.EncodeToString([]byte{1, 2, 3})},
		{name: "wrong version byte", stored: base64.StdEncoding.EncodeToString(append([]byte{2}, make([]byte, 48)...))},
		{name: "foreign format", stored: base64.StdEncoding.EncodeToString([]byte("$2a$10$bcrypt-looking-garbage-here.........."))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotPanics(t, func() {
				assert.False(t, hasher.Verify("any password", tt.stored))
			})
		})
	}
}

func TestDecodeBlob(t *testing.T) {
	t.Parallel()

	hasher, err := credential.New()
	require.NoError(t, err)

	t.Run("decodes valid blob", func(t *testing.T) {
		t.Parallel()

		blob, err := hasher.Hash("decode me")
		require.NoError(t, err)

		version, salt, key, err := credential.DecodeBlob(blob)
		require.NoError(t, err)
		assert.Equal(t, byte(credential.Version), version)
		assert.Len(t, salt, credential.SaltSize)
		assert.Len(t, key, credential.KeySize)
	})

	t.Run("reports malformed input", func(t *testing.T) {
		t.Parallel()

		_, _, _, err := credential.DecodeBlob("%%%")
		assert.ErrorIs(t, err, credential.ErrMalformedBlob)

		_, _, _, err = credential.DecodeBlob(base64.StdEncoding.EncodeToString([]byte{1}))
		assert.ErrorIs(t, err, credential.ErrMalformedBlob)
	})

	t.Run("reports unsupported version", func(t *testing.T) {
		t.Parallel()

		raw := append([]byte{9}, make([]byte, 48)...)
		_, _, _, err := credential.DecodeBlob(base64.StdEncoding.EncodeToString(raw))
		assert.ErrorIs(t, err, credential.ErrUnsupportedVersion)
	})
}
