package session

import "context"

// Session is the client-held view of authentication state. Token presence is
// the sole authority for the authenticated decision; the role flags and name
// are advisory caches of server-asserted facts and are never trusted for
// actual access control, which the marketplace API re-checks on every
// privileged call.
type Session struct {
	Token    string
	IsSeller bool
	IsAdmin  bool
	Name     string
}

// Authenticated reports whether a bearer token is present. Role flags are
// only meaningful once this returns true.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Store persists per-visitor sessions keyed by an opaque session id.
// Implementations must treat absent or unparseable fields as zero values and
// must make Clear idempotent.
type Store interface {
	Get(ctx context.Context, sid string) (Session, error)
	Set(ctx context.Context, sid string, s Session) error
	Clear(ctx context.Context, sid string) error
}
