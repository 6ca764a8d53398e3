package authority_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monamour-platform/authkit/pkg/authority"
)

// failingStorage simulates a broken persistence layer: every call errors.
type failingStorage struct{}

var errStorageDown = errors.New("storage down")

func (failingStorage) GetUser(context.Context, int64) (authority.User, error) {
	return authority.User{}, errStorageDown
}

func (failingStorage) GetRoleByName(context.Context, string) (authority.Role, error) {
	return authority.Role{}, errStorageDown
}

func (failingStorage) UpsertRole(context.Context, string) (authority.Role, error) {
	return authority.Role{}, errStorageDown
}

func (failingStorage) ListUserRoles(context.Context, int64) ([]string, error) {
	return nil, errStorageDown
}

func (failingStorage) AssignmentExists(context.Context, int64, int64) (bool, error) {
	return false, errStorageDown
}

func (failingStorage) CreateAssignment(context.Context, authority.Assignment) error {
	return errStorageDown
}

func (failingStorage) DeleteAssignment(context.Context, int64, int64) error {
	return errStorageDown
}

func newSeededAuthority(t *testing.T, opts ...authority.Option) (*authority.Authority, *authority.MemoryStorage) {
	t.Helper()

	storage := authority.NewMemoryStorage()
	storage.AddUser(authority.User{ID: 1, Email: "admin@example.com", Status: authority.StatusActive})
	storage.AddUser(authority.User{ID: 2, Email: "user@example.com", Status: authority.StatusActive})
	storage.AddUser(authority.User{ID: 3, Email: "banned@example.com", Status: "suspended"})

	auth := authority.New(storage, opts...)
	require.True(t, auth.EnsureDefaultRoles(context.Background()))

	return auth, storage
}

func TestAuthority_EnsureDefaultRoles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	auth, storage := newSeededAuthority(t)

	// Repeated calls stay idempotent.
	require.True(t, auth.EnsureDefaultRoles(ctx))
	require.True(t, auth.EnsureDefaultRoles(ctx))

	_, err := storage.GetRoleByName(ctx, authority.RoleAdmin)
	require.NoError(t, err)
	_, err = storage.GetRoleByName(ctx, authority.RoleUser)
	require.NoError(t, err)
}

func TestAuthority_AssignRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("assigns and is idempotent", func(t *testing.T) {
		t.Parallel()

		auth, storage := newSeededAuthority(t)

		assert.True(t, auth.AssignRole(ctx, 1, authority.RoleAdmin, nil))
		assert.True(t, auth.AssignRole(ctx, 1, authority.RoleAdmin, nil), "duplicate assign returns true")
		assert.Equal(t, 1, storage.AssignmentCount(), "duplicate assign must not add a second row")
		assert.Equal(t, []string{"admin"}, auth.ListRoles(ctx, 1))
	})

	t.Run("nonexistent user", func(t *testing.T) {
		t.Parallel()

		auth, _ := newSeededAuthority(t)
		assert.False(t, auth.AssignRole(ctx, 999, authority.RoleAdmin, nil))
	})

	t.Run("nonexistent role", func(t *testing.T) {
		t.Parallel()

		auth, _ := newSeededAuthority(t)
		assert.False(t, auth.AssignRole(ctx, 1, "ghost", nil))
	})

	t.Run("records attribution and timestamp", func(t *testing.T) {
		t.Parallel()

		fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		auth, storage := newSeededAuthority(t, authority.WithClock(func() time.Time { return fixed }))

		assigner := int64(1)
		require.True(t, auth.AssignRole(ctx, 2, authority.RoleUser, &assigner))

		role, err := storage.GetRoleByName(ctx, authority.RoleUser)
		require.NoError(t, err)
		exists, err := storage.AssignmentExists(ctx, 2, role.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("fails closed on storage error", func(t *testing.T) {
		t.Parallel()

		auth := authority.New(failingStorage{})
		assert.False(t, auth.AssignRole(ctx, 1, authority.RoleAdmin, nil))
	})
}

func TestAuthority_RemoveRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("removes held role", func(t *testing.T) {
		t.Parallel()

		auth, _ := newSeededAuthority(t)
		require.True(t, auth.AssignRole(ctx, 1, authority.RoleAdmin, nil))

		assert.True(t, auth.RemoveRole(ctx, 1, authority.RoleAdmin))
		assert.Empty(t, auth.ListRoles(ctx, 1))
	})

	t.Run("absent assignment is idempotent", func(t *testing.T) {
		t.Parallel()

		auth, _ := newSeededAuthority(t)
		assert.True(t, auth.RemoveRole(ctx, 1, authority.RoleAdmin))
	})

	t.Run("unknown role name counts as absent", func(t *testing.T) {
		t.Parallel()

		auth, _ := newSeededAuthority(t)
		assert.True(t, auth.RemoveRole(ctx, 1, "ghost"))
	})

	t.Run("fails closed on storage error", func(t *testing.T) {
		t.Parallel()

		auth := authority.New(failingStorage{})
		assert.False(t, auth.RemoveRole(ctx, 1, authority.RoleAdmin))
	})
}

func TestAuthority_RoleQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	auth, _ := newSeededAuthority(t)
	require.True(t, auth.EnsureRoles(ctx, "editor"))
	require.True(t, auth.AssignRole(ctx, 1, authority.RoleAdmin, nil))
	require.True(t, auth.AssignRole(ctx, 1, "editor", nil))

	t.Run("list preserves assignment order", func(t *testing.T) {
		assert.Equal(t, []string{"admin", "editor"}, auth.ListRoles(ctx, 1))
	})

	t.Run("case-insensitive membership", func(t *testing.T) {
		assert.True(t, auth.HasRole(ctx, 1, "ADMIN"))
		assert.False(t, auth.HasRole(ctx, 1, "user"))
	})

	t.Run("any-of and all-of", func(t *testing.T) {
		assert.True(t, auth.HasAnyRole(ctx, 1, "user", "Editor"))
		assert.False(t, auth.HasAnyRole(ctx, 1, "user", "moderator"))
		assert.True(t, auth.HasAllRoles(ctx, 1, "admin", "editor"))
		assert.False(t, auth.HasAllRoles(ctx, 1, "admin", "user"))
	})

	t.Run("unknown user has no roles", func(t *testing.T) {
		assert.Empty(t, auth.ListRoles(ctx, 999))
		assert.False(t, auth.HasRole(ctx, 999, authority.RoleAdmin))
	})

	t.Run("storage failure yields empty set", func(t *testing.T) {
		broken := authority.New(failingStorage{})
		assert.Empty(t, broken.ListRoles(ctx, 1))
		assert.False(t, broken.HasRole(ctx, 1, authority.RoleAdmin))
		assert.False(t, broken.HasAnyRole(ctx, 1, authority.RoleAdmin, authority.RoleUser))
	})
}

func TestAuthority_CanAssignRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	auth, _ := newSeededAuthority(t)

	t.Run("active user and existing role", func(t *testing.T) {
		assert.True(t, auth.CanAssignRole(ctx, 1, authority.RoleAdmin))
	})

	t.Run("inactive user", func(t *testing.T) {
		assert.False(t, auth.CanAssignRole(ctx, 3, authority.RoleAdmin))
	})

	t.Run("unknown user", func(t *testing.T) {
		assert.False(t, auth.CanAssignRole(ctx, 999, authority.RoleAdmin))
	})

	t.Run("unknown role", func(t *testing.T) {
		assert.False(t, auth.CanAssignRole(ctx, 1, "ghost"))
	})

	t.Run("fails closed on storage error", func(t *testing.T) {
		broken := authority.New(failingStorage{})
		assert.False(t, broken.CanAssignRole(ctx, 1, authority.RoleAdmin))
	})
}

func TestValidateRoleName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, authority.ValidateRoleName("admin"))
	assert.NoError(t, authority.ValidateRoleName("content-editor"))
	assert.ErrorIs(t, authority.ValidateRoleName(""), authority.ErrInvalidRoleName)
	assert.ErrorIs(t, authority.ValidateRoleName("a,b"), authority.ErrInvalidRoleName)
}
