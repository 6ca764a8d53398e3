package authority

import (
	"context"
	"sync"
)

type assignmentKey struct {
	userID int64
	roleID int64
}

// MemoryStorage implements Storage in process memory. Intended for tests
// and single-process deployments; the mutex gives the same idempotence
// under race that the Postgres unique constraint provides.
type MemoryStorage struct {
	mu          sync.RWMutex
	users       map[int64]User
	roles       map[string]Role
	nextRoleID  int64
	assignments map[assignmentKey]Assignment
	userRoles   map[int64][]int64 // assignment order per user
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:       make(map[int64]User),
		roles:       make(map[string]Role),
		nextRoleID:  1,
		assignments: make(map[assignmentKey]Assignment),
		userRoles:   make(map[int64][]int64),
	}
}

// AddUser seeds a user record.
func (m *MemoryStorage) AddUser(u User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
}

// GetUser returns the user record for id.
func (m *MemoryStorage) GetUser(ctx context.Context, userID int64) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[userID]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

// GetRoleByName returns the role row with the given name.
func (m *MemoryStorage) GetRoleByName(ctx context.Context, name string) (Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.roles[name]
	if !ok {
		return Role{}, ErrRoleNotFound
	}
	return r, nil
}

// UpsertRole creates the role if absent and returns the row either way.
func (m *MemoryStorage) UpsertRole(ctx context.Context, name string) (Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.roles[name]; ok {
		return r, nil
	}

	r := Role{ID: m.nextRoleID, Name: name}
	m.nextRoleID++
	m.roles[name] = r
	return r, nil
}

// ListUserRoles returns the user's role names in assignment order.
func (m *MemoryStorage) ListUserRoles(ctx context.Context, userID int64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := m.userRoles[userID]
	if len(ids) == 0 {
		return nil, nil
	}

	byID := make(map[int64]string, len(m.roles))
	for name, r := range m.roles {
		byID[r.ID] = name
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// AssignmentExists reports whether the (user, role) assignment exists.
func (m *MemoryStorage) AssignmentExists(ctx context.Context, userID, roleID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.assignments[assignmentKey{userID, roleID}]
	return ok, nil
}

// CreateAssignment inserts the assignment, silently keeping the existing
// row on a duplicate insert.
func (m *MemoryStorage) CreateAssignment(ctx context.Context, a Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := assignmentKey{a.UserID, a.RoleID}
	if _, ok := m.assignments[key]; ok {
		return nil
	}

	m.assignments[key] = a
	m.userRoles[a.UserID] = append(m.userRoles[a.UserID], a.RoleID)
	return nil
}

// DeleteAssignment removes the assignment; absent assignments are a no-op.
func (m *MemoryStorage) DeleteAssignment(ctx context.Context, userID, roleID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := assignmentKey{userID, roleID}
	if _, ok := m.assignments[key]; !ok {
		return nil
	}

	delete(m.assignments, key)

	ids := m.userRoles[userID]
	for i, id := range ids {
		if id == roleID {
			m.userRoles[userID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// AssignmentCount returns the number of assignment rows, used by tests to
// verify idempotence.
func (m *MemoryStorage) AssignmentCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.assignments)
}
