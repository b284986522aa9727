package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusmall/web-gateway/internal/api/dto"
	"github.com/lotusmall/web-gateway/internal/events"
	"github.com/lotusmall/web-gateway/internal/session"
	"github.com/lotusmall/web-gateway/internal/upstream"
)

// ContactHandler serves the public contact-us submission.
type ContactHandler struct {
	api        *upstream.Client
	dispatcher events.Dispatcher
}

// NewContactHandler constructs handler.
func NewContactHandler(api *upstream.Client, dispatcher events.Dispatcher) *ContactHandler {
	return &ContactHandler{api: api, dispatcher: dispatcher}
}

// StartBusiness handles GET /start-business, the partner pitch page whose
// form posts to /contact.
func (h *ContactHandler) StartBusiness(c *fiber.Ctx) error {
	return pageJSON(c, fiber.Map{
		"headline":   "Start Your Business",
		"formAction": "/contact",
	})
}

// Send handles POST /contact.
func (h *ContactHandler) Send(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, message required")
	}

	if err := h.api.SendContact(c.UserContext(), req.ToInput()); err != nil {
		return err
	}

	if h.dispatcher != nil {
		_ = h.dispatcher.Publish(c.UserContext(), events.Event{
			Type:      events.EventContactSubmitted,
			SessionID: session.IDFromContext(c),
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}
