package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotusmall/web-gateway/internal/api/http/handlers"
	"github.com/lotusmall/web-gateway/internal/auth"
	"github.com/lotusmall/web-gateway/internal/config"
	"github.com/lotusmall/web-gateway/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Account   *handlers.AccountHandler
	Listings  *handlers.ListingsHandler
	Inquiries *handlers.InquiriesHandler
	Contact   *handlers.ContactHandler
	News      *handlers.NewsHandler
	Admin     *handlers.AdminHandler

	Sessions *session.Middleware
	Gate     *auth.Gate
	Limits   config.LimitsConfig
}

// RegisterRoutes wires HTTP routes. Health probes sit outside the session
// middleware; every page endpoint runs behind it so gates and navigation see
// one session snapshot per request.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Use(cfg.Sessions.Handle)

	// Public pages. The static listing-form path registers before the
	// parameterized detail route so "new" is never read as a listing id.
	app.Get("/", cfg.Listings.Home)
	app.Get("/listings", cfg.Listings.Browse)
	app.Get("/listings/new", cfg.Gate.RequireSeller(), cfg.Listings.New)
	app.Get("/listings/:id", cfg.Listings.Show)
	app.Get("/start-business", cfg.Contact.StartBusiness)
	app.Get("/vietnam-news", cfg.News.Feed)

	// Auth flows.
	app.Get("/login", cfg.Auth.LoginPage)
	app.Post("/login", RateLimit(cfg.Limits.LoginPerMinute), cfg.Auth.Login)
	app.Get("/register", cfg.Auth.RegisterPage)
	app.Post("/register", RateLimit(cfg.Limits.LoginPerMinute), cfg.Auth.Register)
	app.Post("/logout", cfg.Auth.Logout)

	// Public submissions.
	app.Post("/inquiries", cfg.Inquiries.Create)
	app.Post("/contact", RateLimit(cfg.Limits.ContactPerMinute), cfg.Contact.Send)

	// Any authenticated visitor.
	account := app.Group("/account", cfg.Gate.RequireAuth())
	account.Get("/", cfg.Account.Show)
	account.Patch("/", cfg.Account.Update)
	account.Delete("/", cfg.Account.Delete)

	// Seller pages. The gate redirect is UX only; the marketplace API
	// re-checks the role on each of these calls.
	app.Get("/my/listings", cfg.Gate.RequireSeller(), cfg.Listings.Mine)
	app.Get("/seller/inquiries", cfg.Gate.RequireSeller(), cfg.Inquiries.Received)
	app.Post("/listings", cfg.Gate.RequireSeller(), cfg.Listings.Create)
	app.Patch("/listings/:id", cfg.Gate.RequireSeller(), cfg.Listings.Update)
	app.Delete("/listings/:id", cfg.Gate.RequireSeller(), cfg.Listings.Delete)

	// Buyer pages.
	app.Get("/my/inquiries", cfg.Gate.RequireBuyer(), cfg.Inquiries.Mine)

	// Moderation pages. Requires a token here; admin authority is asserted
	// upstream, so a non-admin token gets the upstream 403 surfaced.
	admin := app.Group("/admin", cfg.Gate.RequireAuth())
	admin.Get("/", cfg.Admin.Dashboard)
	admin.Get("/users", cfg.Admin.Users)
	admin.Post("/users/admin", cfg.Admin.CreateAdminUser)
	admin.Delete("/users/:id", cfg.Admin.DeleteUser)
	admin.Delete("/users/:id/listings", cfg.Admin.DeleteUserListings)
	admin.Patch("/users/:id/admin", cfg.Admin.SetUserAdmin)
	admin.Get("/contacts", cfg.Admin.Contacts)
	admin.Patch("/contacts/:id/respond", cfg.Admin.RespondContact)
	admin.Get("/news", cfg.News.Manage)
	admin.Post("/news", cfg.News.Create)
	admin.Patch("/news/:id", cfg.News.Update)
	admin.Delete("/news/:id", cfg.News.Delete)
}
