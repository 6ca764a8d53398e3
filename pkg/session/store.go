package session

import (
	"context"
	"strconv"
	"time"
)

// Backend keys. Kept unexported: the typed Store is the only reader and
// writer of session state.
const (
	keyUserID        = "auth.user_id"
	keyEmail         = "auth.email"
	keyName          = "auth.name"
	keyRoles         = "auth.roles"
	keyAuthenticated = "auth.flag"
	keyLastActivity  = "auth.last_activity"
	keyReturnURL     = "auth.return_url"
)

// authenticatedSentinel is the literal value required in the authenticated
// flag. Anything else, including an empty read, counts as unauthenticated.
const authenticatedSentinel = "true"

// activityLayout is the sortable timestamp format used for last-activity
// tracking, recorded in local time.
const activityLayout = "2006-01-02T15:04:05"

// Reserved role names that always exist post-initialization.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Store is a typed façade over a Backend for a single session. Query
// methods swallow backend failures and treat an absent session as
// unauthenticated; only mutations surface errors.
type Store struct {
	backend   Backend
	sessionID string
	config    Config
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithConfig sets custom session policy configuration.
func WithConfig(config Config) Option {
	return func(s *Store) {
		s.config = config
	}
}

// WithClock overrides the wall clock, used by tests to simulate idle time.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store bound to one session id.
func NewStore(backend Backend, sessionID string, opts ...Option) *Store {
	s := &Store{
		backend:   backend,
		sessionID: sessionID,
		config:    DefaultConfig(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetPrincipal records the authenticated principal and marks the session
// authenticated. It also records initial activity so a fresh login does not
// immediately report as expiring.
func (s *Store) SetPrincipal(ctx context.Context, p Principal) error {
	if err := s.backend.Set(ctx, s.sessionID, keyUserID, strconv.FormatInt(p.UserID, 10)); err != nil {
		return err
	}
	if err := s.backend.Set(ctx, s.sessionID, keyEmail, p.Email); err != nil {
		return err
	}
	if err := s.backend.Set(ctx, s.sessionID, keyName, p.Name); err != nil {
		return err
	}
	if err := s.backend.Set(ctx, s.sessionID, keyRoles, joinRoles(p.Roles)); err != nil {
		return err
	}
	if err := s.backend.Set(ctx, s.sessionID, keyAuthenticated, authenticatedSentinel); err != nil {
		return err
	}

	return s.Touch(ctx)
}

// Clear wipes the session, returning it to the anonymous state.
func (s *Store) Clear(ctx context.Context) error {
	return s.backend.Clear(ctx, s.sessionID)
}

// IsAuthenticated reports whether the session holds an authenticated
// principal. Both the flag sentinel and a stored user id are required; a
// flag without an id, or the reverse, counts as unauthenticated.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	flag, err := s.backend.Get(ctx, s.sessionID, keyAuthenticated)
	if err != nil || flag != authenticatedSentinel {
		return false
	}

	id, err := s.backend.Get(ctx, s.sessionID, keyUserID)
	return err == nil && id != ""
}

// Principal returns the stored principal. The second result is false when
// the session is unauthenticated.
func (s *Store) Principal(ctx context.Context) (Principal, bool) {
	if !s.IsAuthenticated(ctx) {
		return Principal{}, false
	}

	idRaw, err := s.backend.Get(ctx, s.sessionID, keyUserID)
	if err != nil {
		return Principal{}, false
	}
	id, err := strconv.ParseInt(idRaw, 10, 64)
	if err != nil {
		return Principal{}, false
	}

	email, _ := s.backend.Get(ctx, s.sessionID, keyEmail)
	name, _ := s.backend.Get(ctx, s.sessionID, keyName)
	roles, _ := s.backend.Get(ctx, s.sessionID, keyRoles)

	return Principal{
		UserID: id,
		Email:  email,
		Name:   name,
		Roles:  splitRoles(roles),
	}, true
}

// GetRoles returns the principal's roles in stored order, empty when
// unauthenticated.
func (s *Store) GetRoles(ctx context.Context) []string {
	if !s.IsAuthenticated(ctx) {
		return nil
	}

	raw, err := s.backend.Get(ctx, s.sessionID, keyRoles)
	if err != nil {
		return nil
	}

	return splitRoles(raw)
}

// HasRole reports whether the principal holds the named role,
// case-insensitively.
func (s *Store) HasRole(ctx context.Context, name string) bool {
	return containsFold(s.GetRoles(ctx), name)
}

// HasAnyRole reports whether the principal holds at least one of the named
// roles.
func (s *Store) HasAnyRole(ctx context.Context, names ...string) bool {
	roles := s.GetRoles(ctx)
	for _, name := range names {
		if containsFold(roles, name) {
			return true
		}
	}
	return false
}

// HasAllRoles reports whether the principal holds every named role.
func (s *Store) HasAllRoles(ctx context.Context, names ...string) bool {
	roles := s.GetRoles(ctx)
	for _, name := range names {
		if !containsFold(roles, name) {
			return false
		}
	}
	return true
}

// UpdatePrincipal overwrites the mutable profile fields of an authenticated
// principal. The user id and the authenticated flag are immutable for the
// session's lifetime; calling this on an anonymous session is a no-op.
func (s *Store) UpdatePrincipal(ctx context.Context, email, name string, roles []string) error {
	if !s.IsAuthenticated(ctx) {
		return nil
	}

	if err := s.backend.Set(ctx, s.sessionID, keyEmail, email); err != nil {
		return err
	}
	if err := s.backend.Set(ctx, s.sessionID, keyName, name); err != nil {
		return err
	}
	return s.backend.Set(ctx, s.sessionID, keyRoles, joinRoles(roles))
}

// Touch records the current wall-clock time as last activity.
func (s *Store) Touch(ctx context.Context) error {
	return s.backend.Set(ctx, s.sessionID, keyLastActivity, s.now().Format(activityLayout))
}

// IsExpiring reports whether the session is inside the expiry warning
// window: no recorded activity, an unparseable timestamp, or idle time past
// the warning threshold all count. This is advisory only; the hard timeout
// is enforced by the session transport.
func (s *Store) IsExpiring(ctx context.Context) bool {
	raw, err := s.backend.Get(ctx, s.sessionID, keyLastActivity)
	if err != nil || raw == "" {
		return true
	}

	last, err := time.ParseInLocation(activityLayout, raw, time.Local)
	if err != nil {
		return true
	}

	return s.now().Sub(last) > s.config.warnAfter()
}

// SetReturnURL stores a one-shot redirect target consumed by the next
// DefaultRedirectTarget call.
func (s *Store) SetReturnURL(ctx context.Context, url string) error {
	return s.backend.Set(ctx, s.sessionID, keyReturnURL, url)
}

// DefaultRedirectTarget picks the post-login route: a stored return URL is
// consumed and returned first, then the admin landing route, then the user
// landing route, then the generic fallback. Pure selection policy; the
// caller performs the actual redirect.
func (s *Store) DefaultRedirectTarget(ctx context.Context) string {
	if url, err := s.backend.Get(ctx, s.sessionID, keyReturnURL); err == nil && url != "" {
		_ = s.backend.Delete(ctx, s.sessionID, keyReturnURL)
		return url
	}

	switch {
	case s.HasRole(ctx, RoleAdmin):
		return s.config.AdminRoute
	case s.HasRole(ctx, RoleUser):
		return s.config.UserRoute
	default:
		return s.config.FallbackRoute
	}
}
