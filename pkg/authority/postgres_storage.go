package authority

import (
	"context"
	"embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrations holds the goose migrations for the authority schema, applied
// with pg.MigrateFS at startup.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations holding the SQL files.
const MigrationsDir = "migrations"

// PostgresStorage implements Storage on a pgx connection pool. Assignment
// idempotence under race relies on the (user_id, role_id) primary key and
// ON CONFLICT DO NOTHING rather than application-level locking.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates a Postgres-backed storage on an existing pool.
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

// GetUser returns the user record for id.
func (s *PostgresStorage) GetUser(ctx context.Context, userID int64) (User, error) {
	var u User
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, status FROM users WHERE id = $1`,
		userID,
	).Scan(&u.ID, &u.Email, &u.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}

// GetRoleByName returns the role row with the given name.
func (s *PostgresStorage) GetRoleByName(ctx context.Context, name string) (Role, error) {
	var r Role
	err := s.pool.QueryRow(ctx,
		`SELECT id, name FROM roles WHERE name = $1`,
		name,
	).Scan(&r.ID, &r.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return r, nil
}

// UpsertRole creates the role if absent and returns the row either way.
func (s *PostgresStorage) UpsertRole(ctx context.Context, name string) (Role, error) {
	var r Role
	err := s.pool.QueryRow(ctx,
		`INSERT INTO roles (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, name`,
		name,
	).Scan(&r.ID, &r.Name)
	if err != nil {
		return Role{}, err
	}
	return r, nil
}

// ListUserRoles returns the user's role names in assignment order.
func (s *PostgresStorage) ListUserRoles(ctx context.Context, userID int64) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT r.name
		 FROM user_roles ur
		 JOIN roles r ON r.id = ur.role_id
		 WHERE ur.user_id = $1
		 ORDER BY ur.assigned_at, r.id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// AssignmentExists reports whether the (user, role) assignment exists.
func (s *PostgresStorage) AssignmentExists(ctx context.Context, userID, roleID int64) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role_id = $2)`,
		userID, roleID,
	).Scan(&exists)
	return exists, err
}

// CreateAssignment inserts the assignment. A concurrent duplicate insert
// is absorbed by the primary key and DO NOTHING.
func (s *PostgresStorage) CreateAssignment(ctx context.Context, a Assignment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO user_roles (user_id, role_id, assigned_at, assigned_by)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, role_id) DO NOTHING`,
		a.UserID, a.RoleID, a.AssignedAt, a.AssignedBy,
	)
	return err
}

// DeleteAssignment removes the assignment; absent assignments are a no-op.
func (s *PostgresStorage) DeleteAssignment(ctx context.Context, userID, roleID int64) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2`,
		userID, roleID,
	)
	return err
}
