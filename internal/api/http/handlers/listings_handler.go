package handlers

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusmall/web-gateway/internal/api/dto"
	"github.com/lotusmall/web-gateway/internal/auth"
	"github.com/lotusmall/web-gateway/internal/session"
	"github.com/lotusmall/web-gateway/internal/upstream"
)

// ListingsHandler serves the public listing feed, the listing detail page
// and the seller's own listing management.
type ListingsHandler struct {
	api *upstream.Client
}

// NewListingsHandler constructs handler.
func NewListingsHandler(api *upstream.Client) *ListingsHandler {
	return &ListingsHandler{api: api}
}

// Home handles GET /, the landing page with the listing feed.
func (h *ListingsHandler) Home(c *fiber.Ctx) error {
	listings, err := h.api.Listings(c.UserContext(), upstream.ListingFilter{})
	if err != nil {
		return err
	}
	return pageJSON(c, fiber.Map{"listings": listings})
}

// Browse handles GET /listings with an optional origin-country filter.
func (h *ListingsHandler) Browse(c *fiber.Ctx) error {
	// Both parameter names are accepted; originCountry wins.
	origin := c.Query("originCountry")
	if origin == "" {
		origin = c.Query("origin")
	}
	listings, err := h.api.Listings(c.UserContext(), upstream.ListingFilter{OriginCountry: origin})
	if err != nil {
		return err
	}
	return pageJSON(c, fiber.Map{"listings": listings, "originCountry": origin})
}

// Show handles GET /listings/:id. The page carries exactly one of three
// presentations for the visitor: owner, guest or authenticated non-owner.
func (h *ListingsHandler) Show(c *fiber.Ctx) error {
	id := c.Params("id")
	listing, err := h.api.Listing(c.UserContext(), id)
	if err != nil {
		return err
	}

	sess := session.FromContext(c)
	view := dto.ListingView{Listing: listing}
	switch {
	case auth.IsOwner(sess.Token, listing.OwnerIDString()):
		view.Viewer = dto.ViewerOwner
	case !sess.Authenticated():
		view.Viewer = dto.ViewerGuest
		view.LoginURL = auth.LoginPath + "?next=" + url.QueryEscape(c.Path())
	default:
		view.Viewer = dto.ViewerVisitor
	}
	return pageJSON(c, view)
}

// New handles GET /listings/new, the seller's blank listing form.
func (h *ListingsHandler) New(c *fiber.Ctx) error {
	return pageJSON(c, fiber.Map{
		"listing":    upstream.ListingInput{ImageURLs: []string{}},
		"formAction": "/listings",
	})
}

// Mine handles GET /my/listings for the authenticated seller.
func (h *ListingsHandler) Mine(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	listings, err := h.api.MyListings(c.UserContext(), sess.Token)
	if err != nil {
		return err
	}
	return pageJSON(c, fiber.Map{"listings": listings})
}

// Create handles POST /listings.
func (h *ListingsHandler) Create(c *fiber.Ctx) error {
	var req dto.ListingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || req.Price <= 0 {
		return fiber.NewError(http.StatusBadRequest, "title and positive price required")
	}

	sess := session.FromContext(c)
	listing, err := h.api.CreateListing(c.UserContext(), sess.Token, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPage(sess, listing))
}

// Update handles PATCH /listings/:id.
func (h *ListingsHandler) Update(c *fiber.Ctx) error {
	var req dto.ListingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	sess := session.FromContext(c)
	listing, err := h.api.UpdateListing(c.UserContext(), sess.Token, c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return pageJSON(c, listing)
}

// Delete handles DELETE /listings/:id.
func (h *ListingsHandler) Delete(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	if err := h.api.DeleteListing(c.UserContext(), sess.Token, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
