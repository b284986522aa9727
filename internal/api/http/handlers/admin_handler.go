package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusmall/web-gateway/internal/api/dto"
	"github.com/lotusmall/web-gateway/internal/auth"
	"github.com/lotusmall/web-gateway/internal/session"
	"github.com/lotusmall/web-gateway/internal/upstream"
)

// AdminHandler serves the moderation pages: dashboard stats, the user table
// and contact moderation. The gateway gate only checks that a token exists;
// the marketplace API is the authority on whether the caller is an admin.
type AdminHandler struct {
	api      *upstream.Client
	sessions *session.Middleware
}

// NewAdminHandler constructs handler.
func NewAdminHandler(api *upstream.Client, sessions *session.Middleware) *AdminHandler {
	return &AdminHandler{api: api, sessions: sessions}
}

// Dashboard handles GET /admin.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	stats, err := h.api.Stats(c.UserContext(), sess.Token)
	if err != nil {
		return err
	}
	return pageJSON(c, stats)
}

// Users handles GET /admin/users with role/search/page filters.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	rows, err := h.api.Users(c.UserContext(), sess.Token, upstream.UserQuery{
		Role:   c.Query("role", "all"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}
	return pageJSON(c, fiber.Map{"users": rows})
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	if err := h.api.DeleteUser(c.UserContext(), sess.Token, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteUserListings handles DELETE /admin/users/:id/listings.
func (h *AdminHandler) DeleteUserListings(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	if err := h.api.DeleteUserListings(c.UserContext(), sess.Token, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// SetUserAdmin handles PATCH /admin/users/:id/admin. When the admin flips
// their own flag, the session's cached copy follows the server assertion.
func (h *AdminHandler) SetUserAdmin(c *fiber.Ctx) error {
	var req dto.AdminToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	sess := session.FromContext(c)
	userID := c.Params("id")
	if err := h.api.SetUserAdmin(c.UserContext(), sess.Token, userID, req.IsAdmin); err != nil {
		return err
	}

	if sub, ok := auth.DecodeSubject(sess.Token); ok && sub == userID && sess.IsAdmin != req.IsAdmin {
		sess.IsAdmin = req.IsAdmin
		if err := h.sessions.Save(c, sess); err != nil {
			return err
		}
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateAdminUser handles POST /admin/users/admin.
func (h *AdminHandler) CreateAdminUser(c *fiber.Ctx) error {
	var req dto.AdminCreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	sess := session.FromContext(c)
	row, err := h.api.CreateAdminUser(c.UserContext(), sess.Token, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPage(sess, row))
}

// Contacts handles GET /admin/contacts with an optional status filter.
func (h *AdminHandler) Contacts(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	rows, err := h.api.Contacts(c.UserContext(), sess.Token, c.Query("status", "all"))
	if err != nil {
		return err
	}
	return pageJSON(c, fiber.Map{"contacts": rows})
}

// RespondContact handles PATCH /admin/contacts/:id/respond.
func (h *AdminHandler) RespondContact(c *fiber.Ctx) error {
	var req dto.ContactRespondRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.RespondedBy == "" {
		return fiber.NewError(http.StatusBadRequest, "respondedBy required")
	}

	sess := session.FromContext(c)
	if err := h.api.RespondContact(c.UserContext(), sess.Token, c.Params("id"), req.RespondedBy); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
