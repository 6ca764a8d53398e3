// Package authority provides the persistent role catalogue and user-role
// assignment service, decoupled from any live session so it can authorize
// background jobs and API calls as well as web requests.
//
// The design is fail-closed by contract, not by accident: every public
// method that touches persistence catches the underlying error, logs it at
// this boundary, and degrades to the least-privileged answer (empty role
// set, false). Callers never see a storage error dressed as an
// authorization decision.
//
// Two reserved role names, "admin" and "user", are guaranteed to exist
// after EnsureDefaultRoles; the catalogue remains open to arbitrary
// additional roles. Assignments are idempotent in both directions:
// assigning an already-held role and removing an absent one both succeed.
//
// # Usage
//
//	import "github.com/monamour-platform/authkit/pkg/authority"
//
//	storage := authority.NewPostgresStorage(pool)
//	auth := authority.New(storage, authority.WithLogger(log))
//
//	auth.EnsureDefaultRoles(ctx)
//
//	if auth.HasRole(ctx, userID, authority.RoleAdmin) {
//	    // admin path
//	}
//
//	assignedBy := actorID
//	if !auth.AssignRole(ctx, userID, "editor", &assignedBy) {
//	    // user or role missing, or storage down
//	}
//
// MemoryStorage backs tests and small deployments; PostgresStorage rides
// pgx and relies on the (user_id, role_id) primary key for idempotence
// under race. The embedded goose migrations in Migrations create the
// roles and user_roles tables (the users table is owned by the consuming
// application).
//
// A YAML role catalogue can seed extension roles at startup via
// LoadRoleCatalogue and SeedCatalogue.
package authority
