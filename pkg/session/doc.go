// Package session provides server-side authentication state with
// idle-timeout tracking.
//
// A Store is a typed façade over a Backend, the string key-value session
// transport owned by the web layer. The store records a Principal (user
// id, email, display name, ordered roles) at login, refreshes a
// last-activity timestamp per request, and answers authorization queries
// against the stored roles.
//
// Authentication requires two conditions at once: the authenticated flag
// must hold its literal sentinel AND a user id must be present. Either one
// alone is treated as anonymous. Query methods never fail: a missing
// session, a backend error, or an unparseable timestamp all collapse to
// the unauthenticated/empty answer.
//
// Roles are serialized comma-joined, so role names must not contain
// commas. Membership tests are case-insensitive.
//
// # Usage
//
//	import "github.com/monamour-platform/authkit/pkg/session"
//
//	backend := session.NewMemoryBackend(30*time.Minute, 5*time.Minute)
//	store := session.NewStore(backend, sid)
//
//	_ = store.SetPrincipal(ctx, session.Principal{
//	    UserID: 42,
//	    Email:  "user@example.com",
//	    Name:   "User",
//	    Roles:  []string{session.RoleUser},
//	})
//
//	if store.IsAuthenticated(ctx) && store.HasRole(ctx, session.RoleAdmin) {
//	    // admin-only path
//	}
//
//	if store.IsExpiring(ctx) {
//	    // warn the user; the transport enforces the hard timeout
//	}
//
// Two backends ship with the package: MemoryBackend for tests and
// single-process deployments, and RedisBackend for shared state across
// instances. Both honor an absolute session lifetime armed at first write.
//
// IsExpiring is advisory. The store computes whether the idle time has
// crossed the warning threshold (provider timeout minus warning window,
// 25 minutes with defaults) but never destroys the session itself; acting
// on expiry, typically by calling Clear, is the caller's decision.
package session
