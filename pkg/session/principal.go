package session

import "strings"

// Principal is the authenticated identity carried by a session.
type Principal struct {
	UserID int64    `json:"user_id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Roles  []string `json:"roles,omitempty"`
}

// joinRoles serializes role names for backend storage. Role names must not
// contain commas; the split side drops empty entries so stray separators
// do not produce phantom roles.
func joinRoles(roles []string) string {
	return strings.Join(roles, ",")
}

// splitRoles is the inverse of joinRoles, dropping empty entries.
func splitRoles(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			roles = append(roles, p)
		}
	}

	if len(roles) == 0 {
		return nil
	}
	return roles
}

// containsFold reports whether roles contains name, ignoring case.
func containsFold(roles []string, name string) bool {
	for _, r := range roles {
		if strings.EqualFold(r, name) {
			return true
		}
	}
	return false
}
