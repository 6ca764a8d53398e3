package authority

import "errors"

// Storage-boundary errors. They never cross the Authority's public
// surface: every public method collapses them to the fail-closed default.
var (
	// ErrUserNotFound indicates the user row does not exist.
	ErrUserNotFound = errors.New("authority.user_not_found")

	// ErrRoleNotFound indicates the role row does not exist.
	ErrRoleNotFound = errors.New("authority.role_not_found")

	// ErrInvalidRoleName indicates a role name that cannot be stored, such
	// as an empty string or one containing the comma separator used by the
	// session role serialization.
	ErrInvalidRoleName = errors.New("authority.invalid_role_name")

	// ErrInvalidCatalogue indicates a role catalogue document that could
	// not be decoded or contains unstorable role names.
	ErrInvalidCatalogue = errors.New("authority.invalid_catalogue")
)
