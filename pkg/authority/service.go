package authority

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/monamour-platform/authkit/pkg/logger"
)

// Authority answers role queries and manages user-role assignments against
// a Storage. Every public method fails authorization closed: persistence
// errors are logged at this boundary and collapse to the empty set or
// false, never propagating to the caller.
type Authority struct {
	storage Storage
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures an Authority.
type Option func(*Authority)

// WithLogger sets a custom logger for boundary diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(a *Authority) {
		a.logger = log
	}
}

// WithClock overrides the wall clock used for assignment timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Authority) {
		a.now = now
	}
}

// New creates an Authority backed by the given storage.
func New(storage Storage, opts ...Option) *Authority {
	a := &Authority{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// ListRoles returns the user's role names in assignment order. Any lookup
// failure yields the empty set.
func (a *Authority) ListRoles(ctx context.Context, userID int64) []string {
	roles, err := a.storage.ListUserRoles(ctx, userID)
	if err != nil {
		a.logFailure(ctx, "list roles", userID, "", err)
		return nil
	}
	return roles
}

// HasRole reports whether the user holds the named role,
// case-insensitively. False on any lookup failure.
func (a *Authority) HasRole(ctx context.Context, userID int64, name string) bool {
	return containsFold(a.ListRoles(ctx, userID), name)
}

// HasAnyRole reports whether the user holds at least one of the named
// roles.
func (a *Authority) HasAnyRole(ctx context.Context, userID int64, names ...string) bool {
	roles := a.ListRoles(ctx, userID)
	for _, name := range names {
		if containsFold(roles, name) {
			return true
		}
	}
	return false
}

// HasAllRoles reports whether the user holds every named role.
func (a *Authority) HasAllRoles(ctx context.Context, userID int64, names ...string) bool {
	roles := a.ListRoles(ctx, userID)
	for _, name := range names {
		if !containsFold(roles, name) {
			return false
		}
	}
	return true
}

// AssignRole grants the named role to the user with a server timestamp and
// optional assigner attribution. Returns false when the user or the role
// does not exist or persistence fails; returns true when the assignment
// was created or already existed.
func (a *Authority) AssignRole(ctx context.Context, userID int64, roleName string, assignedBy *int64) bool {
	if _, err := a.storage.GetUser(ctx, userID); err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			a.logFailure(ctx, "assign role", userID, roleName, err)
		}
		return false
	}

	role, err := a.storage.GetRoleByName(ctx, roleName)
	if err != nil {
		if !errors.Is(err, ErrRoleNotFound) {
			a.logFailure(ctx, "assign role", userID, roleName, err)
		}
		return false
	}

	exists, err := a.storage.AssignmentExists(ctx, userID, role.ID)
	if err != nil {
		a.logFailure(ctx, "assign role", userID, roleName, err)
		return false
	}
	if exists {
		return true
	}

	err = a.storage.CreateAssignment(ctx, Assignment{
		UserID:     userID,
		RoleID:     role.ID,
		AssignedAt: a.now(),
		AssignedBy: assignedBy,
	})
	if err != nil {
		a.logFailure(ctx, "assign role", userID, roleName, err)
		return false
	}

	return true
}

// RemoveRole revokes the named role from the user. Removal is idempotent:
// an absent assignment, or a role name missing from the catalogue
// entirely, both return true. False only on persistence failure.
func (a *Authority) RemoveRole(ctx context.Context, userID int64, roleName string) bool {
	role, err := a.storage.GetRoleByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return true
		}
		a.logFailure(ctx, "remove role", userID, roleName, err)
		return false
	}

	if err := a.storage.DeleteAssignment(ctx, userID, role.ID); err != nil {
		a.logFailure(ctx, "remove role", userID, roleName, err)
		return false
	}

	return true
}

// EnsureDefaultRoles idempotently guarantees the two reserved role names
// exist. Safe to call repeatedly, typically at startup.
func (a *Authority) EnsureDefaultRoles(ctx context.Context) bool {
	return a.EnsureRoles(ctx, RoleAdmin, RoleUser)
}

// EnsureRoles idempotently creates any missing catalogue rows for the
// given role names. Names that are empty or contain a comma are rejected;
// the session layer serializes roles comma-joined and cannot represent
// such names.
func (a *Authority) EnsureRoles(ctx context.Context, names ...string) bool {
	ok := true
	for _, name := range names {
		if err := ValidateRoleName(name); err != nil {
			a.logFailure(ctx, "ensure roles", 0, name, err)
			ok = false
			continue
		}

		if _, err := a.storage.UpsertRole(ctx, name); err != nil {
			a.logFailure(ctx, "ensure roles", 0, name, err)
			ok = false
		}
	}
	return ok
}

// CanAssignRole is the authorization precondition for role management: the
// user must exist with an active status and the role must exist. Further
// business rules, such as protecting the last admin, belong to callers.
func (a *Authority) CanAssignRole(ctx context.Context, userID int64, roleName string) bool {
	user, err := a.storage.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			a.logFailure(ctx, "can assign role", userID, roleName, err)
		}
		return false
	}

	if user.Status != StatusActive {
		return false
	}

	if _, err := a.storage.GetRoleByName(ctx, roleName); err != nil {
		if !errors.Is(err, ErrRoleNotFound) {
			a.logFailure(ctx, "can assign role", userID, roleName, err)
		}
		return false
	}

	return true
}

// ValidateRoleName reports whether a role name can be stored and later
// serialized by the session layer.
func ValidateRoleName(name string) error {
	if name == "" || strings.Contains(name, ",") {
		return ErrInvalidRoleName
	}
	return nil
}

func (a *Authority) logFailure(ctx context.Context, op string, userID int64, roleName string, err error) {
	attrs := []any{
		logger.Error(err),
		logger.Component("authority"),
		slog.String("op", op),
	}
	if userID != 0 {
		attrs = append(attrs, logger.UserID(userID))
	}
	if roleName != "" {
		attrs = append(attrs, logger.Role(roleName))
	}
	a.logger.ErrorContext(ctx, "authority operation degraded to fail-closed default", attrs...)
}

func containsFold(roles []string, name string) bool {
	for _, r := range roles {
		if strings.EqualFold(r, name) {
			return true
		}
	}
	return false
}
