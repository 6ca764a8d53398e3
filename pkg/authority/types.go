package authority

import "time"

// Reserved role names guaranteed to exist after EnsureDefaultRoles. The
// catalogue is open beyond these two: any role row the schema holds is a
// valid role name.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// StatusActive is the user status required by CanAssignRole.
const StatusActive = "active"

// User is the slice of the user record the authority needs: identity and
// account status.
type User struct {
	ID     int64
	Email  string
	Status string
}

// Role is a row in the role catalogue.
type Role struct {
	ID   int64
	Name string
}

// Assignment links a user to a role with attribution.
type Assignment struct {
	UserID     int64
	RoleID     int64
	AssignedAt time.Time
	AssignedBy *int64
}
