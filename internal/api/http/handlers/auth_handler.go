package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusmall/web-gateway/internal/api/dto"
	"github.com/lotusmall/web-gateway/internal/auth"
	"github.com/lotusmall/web-gateway/internal/events"
	"github.com/lotusmall/web-gateway/internal/session"
	"github.com/lotusmall/web-gateway/internal/upstream"
)

// AuthHandler exposes login, registration and logout.
type AuthHandler struct {
	api        *upstream.Client
	sessions   *session.Middleware
	dispatcher events.Dispatcher
}

// NewAuthHandler constructs handler.
func NewAuthHandler(api *upstream.Client, sessions *session.Middleware, dispatcher events.Dispatcher) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions, dispatcher: dispatcher}
}

// LoginPage handles GET /login, returning the login view with its return target.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return pageJSON(c, fiber.Map{
		"next": sanitizeNext(c.Query("next")),
	})
}

// RegisterPage handles GET /register, the account creation form.
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return pageJSON(c, fiber.Map{
		"next": sanitizeNext(c.Query("next")),
	})
}

// Login handles POST /login. On success the four upstream-asserted fields are
// persisted verbatim and the visitor is sent to their return target or role home.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	result, err := h.api.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if err := h.saveAuthResult(c, result); err != nil {
		return err
	}
	h.publish(c, events.EventSessionCreated, map[string]any{"seller": result.IsSeller})

	return c.Redirect(h.postLoginTarget(c, result), fiber.StatusSeeOther)
}

// Register handles POST /register; the upstream answer has the same shape as login.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	input := upstream.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
		IsSeller:    req.IsSeller,
		FromVietnam: req.FromVietnam,
	}
	// Country is only meaningful for sellers outside Vietnam.
	if !req.FromVietnam {
		input.Country = req.Country
	}

	result, err := h.api.Register(c.UserContext(), input)
	if err != nil {
		return err
	}
	if err := h.saveAuthResult(c, result); err != nil {
		return err
	}
	h.publish(c, events.EventSessionCreated, map[string]any{"seller": result.IsSeller, "registered": true})

	return c.Redirect(h.postLoginTarget(c, result), fiber.StatusSeeOther)
}

// Logout handles POST /logout: clear everything this system wrote, then send
// the visitor to the login page. Logging out twice ends in the same state.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Destroy(c); err != nil {
		return err
	}
	h.publish(c, events.EventSessionCleared, nil)
	return c.Redirect(auth.LoginPath, fiber.StatusSeeOther)
}

func (h *AuthHandler) saveAuthResult(c *fiber.Ctx, result upstream.AuthResult) error {
	return h.sessions.Save(c, session.Session{
		Token:    result.Token,
		IsSeller: result.IsSeller,
		IsAdmin:  result.IsAdmin,
		Name:     result.Name,
	})
}

func (h *AuthHandler) postLoginTarget(c *fiber.Ctx, result upstream.AuthResult) string {
	if next := sanitizeNext(c.Query("next")); next != "" {
		return next
	}
	if result.IsSeller {
		return auth.SellerHomePath
	}
	return auth.BuyerHomePath
}

func (h *AuthHandler) publish(c *fiber.Ctx, t events.EventType, payload map[string]any) {
	if h.dispatcher == nil {
		return
	}
	_ = h.dispatcher.Publish(c.UserContext(), events.Event{
		Type:      t,
		SessionID: session.IDFromContext(c),
		Payload:   payload,
	})
}
