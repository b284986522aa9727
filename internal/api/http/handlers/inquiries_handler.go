package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusmall/web-gateway/internal/api/dto"
	"github.com/lotusmall/web-gateway/internal/events"
	"github.com/lotusmall/web-gateway/internal/session"
	"github.com/lotusmall/web-gateway/internal/upstream"
)

// InquiriesHandler serves purchase inquiries on both sides of the trade.
type InquiriesHandler struct {
	api        *upstream.Client
	dispatcher events.Dispatcher
}

// NewInquiriesHandler constructs handler.
func NewInquiriesHandler(api *upstream.Client, dispatcher events.Dispatcher) *InquiriesHandler {
	return &InquiriesHandler{api: api, dispatcher: dispatcher}
}

// Mine handles GET /my/inquiries for the authenticated buyer.
func (h *InquiriesHandler) Mine(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	inquiries, err := h.api.MyInquiries(c.UserContext(), sess.Token)
	if err != nil {
		return err
	}
	return pageJSON(c, fiber.Map{"inquiries": inquiries})
}

// Received handles GET /seller/inquiries for the authenticated seller.
func (h *InquiriesHandler) Received(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	inquiries, err := h.api.SellerInquiries(c.UserContext(), sess.Token)
	if err != nil {
		return err
	}
	return pageJSON(c, fiber.Map{"inquiries": inquiries})
}

// Create handles POST /inquiries. Anonymous submissions are allowed; when a
// session token exists it is attached so the inquiry is attributed upstream.
func (h *InquiriesHandler) Create(c *fiber.Ctx) error {
	var req dto.InquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ListingID == "" || req.BuyerName == "" || req.BuyerPhone == "" {
		return fiber.NewError(http.StatusBadRequest, "listingID, buyerName, buyerPhone required")
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	sess := session.FromContext(c)
	inquiry, err := h.api.CreateInquiry(c.UserContext(), sess.Token, req.ToInput())
	if err != nil {
		return err
	}

	if h.dispatcher != nil {
		_ = h.dispatcher.Publish(c.UserContext(), events.Event{
			Type:      events.EventInquirySubmitted,
			SessionID: session.IDFromContext(c),
			Payload:   map[string]any{"listing_id": req.ListingID},
		})
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPage(sess, inquiry))
}
