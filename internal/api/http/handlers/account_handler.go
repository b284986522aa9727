package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusmall/web-gateway/internal/api/dto"
	"github.com/lotusmall/web-gateway/internal/events"
	"github.com/lotusmall/web-gateway/internal/session"
	"github.com/lotusmall/web-gateway/internal/upstream"
)

// AccountHandler serves the authenticated profile page and its mutations.
type AccountHandler struct {
	api        *upstream.Client
	sessions   *session.Middleware
	dispatcher events.Dispatcher
}

// NewAccountHandler constructs handler.
func NewAccountHandler(api *upstream.Client, sessions *session.Middleware, dispatcher events.Dispatcher) *AccountHandler {
	return &AccountHandler{api: api, sessions: sessions, dispatcher: dispatcher}
}

// Show handles GET /account. A fetch failure surfaces as an error without
// touching the session: a transient server problem must not log the user out.
func (h *AccountHandler) Show(c *fiber.Ctx) error {
	sess := session.FromContext(c)

	profile, err := h.api.Me(c.UserContext(), sess.Token)
	if err != nil {
		return err
	}
	if err := h.refreshCachedFields(c, sess, profile); err != nil {
		return err
	}
	return pageJSON(c, profile)
}

// Update handles PATCH /account and refreshes the session's cached name and
// role from the server's answer.
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	sess := session.FromContext(c)
	profile, err := h.api.UpdateMe(c.UserContext(), sess.Token, upstream.ProfilePatch{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return err
	}
	if err := h.refreshCachedFields(c, sess, profile); err != nil {
		return err
	}
	return pageJSON(c, profile)
}

// Delete handles DELETE /account: upstream delete first, session clear only
// after it succeeds, so a failed delete leaves the visitor logged in.
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	if err := h.api.DeleteMe(c.UserContext(), sess.Token); err != nil {
		return err
	}
	if err := h.sessions.Destroy(c); err != nil {
		return err
	}
	if h.dispatcher != nil {
		_ = h.dispatcher.Publish(c.UserContext(), events.Event{
			Type:      events.EventAccountDeleted,
			SessionID: session.IDFromContext(c),
		})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// refreshCachedFields re-syncs the advisory session copies of name and role
// flags from a fresh server assertion. The token itself is untouched.
func (h *AccountHandler) refreshCachedFields(c *fiber.Ctx, sess session.Session, profile upstream.Profile) error {
	if sess.Name == profile.Name && sess.IsSeller == profile.IsSeller && sess.IsAdmin == profile.IsAdmin {
		return nil
	}
	sess.Name = profile.Name
	sess.IsSeller = profile.IsSeller
	sess.IsAdmin = profile.IsAdmin
	if err := h.sessions.Save(c, sess); err != nil {
		return err
	}
	if h.dispatcher != nil {
		_ = h.dispatcher.Publish(c.UserContext(), events.Event{
			Type:      events.EventSessionRefreshed,
			SessionID: session.IDFromContext(c),
		})
	}
	return nil
}
