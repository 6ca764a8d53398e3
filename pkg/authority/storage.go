package authority

import "context"

// Storage is the persistence boundary consumed by the Authority. Methods
// return ErrUserNotFound/ErrRoleNotFound for missing rows; any other error
// is a persistence failure. The Authority swallows both at its public
// surface, so implementations should not try to soften errors themselves.
type Storage interface {
	// GetUser returns the user record for id.
	GetUser(ctx context.Context, userID int64) (User, error)

	// GetRoleByName returns the role row with the given name.
	GetRoleByName(ctx context.Context, name string) (Role, error)

	// UpsertRole creates the role if absent and returns the row either way.
	UpsertRole(ctx context.Context, name string) (Role, error)

	// ListUserRoles returns the user's role names in assignment order.
	ListUserRoles(ctx context.Context, userID int64) ([]string, error)

	// AssignmentExists reports whether the (user, role) assignment exists.
	AssignmentExists(ctx context.Context, userID, roleID int64) (bool, error)

	// CreateAssignment inserts the assignment. Implementations must be
	// idempotent under race: a concurrent duplicate insert succeeds without
	// a second row.
	CreateAssignment(ctx context.Context, a Assignment) error

	// DeleteAssignment removes the assignment. Deleting an absent
	// assignment is not an error.
	DeleteAssignment(ctx context.Context, userID, roleID int64) error
}
