package auth

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusmall/web-gateway/internal/observability"
	"github.com/lotusmall/web-gateway/internal/session"
)

// Route targets used by gate redirects.
const (
	LoginPath      = "/login"
	SellerHomePath = "/my/listings"
	BuyerHomePath  = "/my/inquiries"
)

// Gate builds access-control middleware over the session loaded by the
// session middleware. A gated handler never runs when a redirect fires, and
// each request produces at most one redirect. Authorization here is a UX
// decision only; the marketplace API re-authorizes every privileged call.
type Gate struct {
	metrics *observability.Metrics
}

// NewGate constructs the gate factory.
func NewGate(metrics *observability.Metrics) *Gate {
	return &Gate{metrics: metrics}
}

// RequireAuth admits any visitor with a token. Anonymous visitors are sent
// to the login page carrying the original path so login can return them.
func (g *Gate) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := session.FromContext(c)
		if !sess.Authenticated() {
			return g.redirectToLogin(c)
		}
		return c.Next()
	}
}

// RequireSeller admits authenticated sellers; authenticated non-sellers are
// sent to the buyer home. Role flags are consulted only once a token is
// present, so a stray flag without a token still reads as anonymous.
func (g *Gate) RequireSeller() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := session.FromContext(c)
		if !sess.Authenticated() {
			return g.redirectToLogin(c)
		}
		if !sess.IsSeller {
			return g.redirect(c, BuyerHomePath)
		}
		return c.Next()
	}
}

// RequireBuyer admits authenticated buyers; sellers are sent to their own home.
func (g *Gate) RequireBuyer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := session.FromContext(c)
		if !sess.Authenticated() {
			return g.redirectToLogin(c)
		}
		if sess.IsSeller {
			return g.redirect(c, SellerHomePath)
		}
		return c.Next()
	}
}

func (g *Gate) redirectToLogin(c *fiber.Ctx) error {
	target := LoginPath + "?next=" + url.QueryEscape(c.Path())
	return g.redirect(c, target)
}

func (g *Gate) redirect(c *fiber.Ctx, target string) error {
	g.metrics.RecordRedirect(c.Path(), target)
	return c.Redirect(target, fiber.StatusSeeOther)
}
