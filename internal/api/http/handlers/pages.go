package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusmall/web-gateway/internal/api/dto"
	"github.com/lotusmall/web-gateway/internal/session"
)

// pageJSON renders a view-model envelope carrying the data, the navigation
// visible to this session and the advisory session view.
func pageJSON(c *fiber.Ctx, data any) error {
	return c.JSON(dto.NewPage(session.FromContext(c), data))
}

// sanitizeNext accepts only same-site paths as post-login return targets.
// Anything absolute, protocol-relative or empty falls back to "".
func sanitizeNext(next string) string {
	if next == "" {
		return ""
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	if strings.ContainsAny(next, "\r\n") {
		return ""
	}
	return next
}
