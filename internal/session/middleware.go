package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lotusmall/web-gateway/internal/config"
	apperrors "github.com/lotusmall/web-gateway/pkg/util"
)

const (
	sessionLocalKey = "session_state"
	sidLocalKey     = "session_id"
)

// Middleware identifies the visitor and loads their session.
type Middleware struct {
	store Store
	cfg   config.SessionConfig
}

// NewMiddleware constructs session middleware over the given store.
func NewMiddleware(store Store, cfg config.SessionConfig) *Middleware {
	return &Middleware{store: store, cfg: cfg}
}

// Handle mints a session-id cookie when absent and loads the session into
// request locals. The load happens exactly once per request; gates and
// handlers downstream all see the same snapshot.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	sid := c.Cookies(m.cfg.CookieName)
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     m.cfg.CookieName,
			Value:    sid,
			Expires:  time.Now().Add(m.cfg.TTL()),
			HTTPOnly: true,
			Secure:   m.cfg.CookieSecure,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
		})
	}

	sess, err := m.store.Get(c.UserContext(), sid)
	if err != nil {
		// A storage failure is an I/O error to surface, not a silent logout.
		return apperrors.NewInternalError(err)
	}

	c.Locals(sidLocalKey, sid)
	c.Locals(sessionLocalKey, sess)
	return c.Next()
}

// FromContext returns the session snapshot loaded by Handle.
func FromContext(c *fiber.Ctx) Session {
	if s, ok := c.Locals(sessionLocalKey).(Session); ok {
		return s
	}
	return Session{}
}

// IDFromContext returns the visitor's session id.
func IDFromContext(c *fiber.Ctx) string {
	if sid, ok := c.Locals(sidLocalKey).(string); ok {
		return sid
	}
	return ""
}

// Save writes the session and updates the request-local snapshot so a
// read-after-write within the same request sees the write.
func (m *Middleware) Save(c *fiber.Ctx, s Session) error {
	sid := IDFromContext(c)
	if sid == "" {
		return apperrors.NewInternalError(nil)
	}
	if err := m.store.Set(c.UserContext(), sid, s); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Locals(sessionLocalKey, s)
	return nil
}

// Destroy clears every field this system ever wrote for the visitor.
// Idempotent: destroying an already-cleared session leaves identical state.
func (m *Middleware) Destroy(c *fiber.Ctx) error {
	sid := IDFromContext(c)
	if sid == "" {
		return nil
	}
	if err := m.store.Clear(c.UserContext(), sid); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Locals(sessionLocalKey, Session{})
	return nil
}
