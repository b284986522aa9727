package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusmall/web-gateway/internal/api/dto"
	"github.com/lotusmall/web-gateway/internal/session"
	"github.com/lotusmall/web-gateway/internal/upstream"
)

// NewsHandler serves the public news feed and the admin news CMS.
type NewsHandler struct {
	api *upstream.Client
}

// NewNewsHandler constructs handler.
func NewNewsHandler(api *upstream.Client) *NewsHandler {
	return &NewsHandler{api: api}
}

// Feed handles GET /vietnam-news, published entries only.
func (h *NewsHandler) Feed(c *fiber.Ctx) error {
	items, err := h.api.News(c.UserContext())
	if err != nil {
		return err
	}
	return pageJSON(c, fiber.Map{"news": items})
}

// Manage handles GET /admin/news, including unpublished drafts.
func (h *NewsHandler) Manage(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	items, err := h.api.AdminNews(c.UserContext(), sess.Token)
	if err != nil {
		return err
	}
	return pageJSON(c, fiber.Map{"news": items})
}

// Create handles POST /admin/news.
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var req dto.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.TitleEn == "" && req.TitleVi == "" {
		return fiber.NewError(http.StatusBadRequest, "a title is required")
	}

	sess := session.FromContext(c)
	item, err := h.api.CreateNews(c.UserContext(), sess.Token, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPage(sess, item))
}

// Update handles PATCH /admin/news/:id.
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	var req dto.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	sess := session.FromContext(c)
	item, err := h.api.UpdateNews(c.UserContext(), sess.Token, c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return pageJSON(c, item)
}

// Delete handles DELETE /admin/news/:id.
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	if err := h.api.DeleteNews(c.UserContext(), sess.Token, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
