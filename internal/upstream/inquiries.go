package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "github.com/lotusmall/web-gateway/pkg/util"
)

// CreateInquiry submits a purchase inquiry. The token is optional: anonymous
// visitors may inquire, authenticated ones are attributed upstream.
func (c *Client) CreateInquiry(ctx context.Context, token string, input InquiryInput) (Inquiry, error) {
	var inquiry Inquiry
	if err := c.do(ctx, http.MethodPost, "/inquiries", token, input, &inquiry); err != nil {
		return Inquiry{}, err
	}
	return inquiry, nil
}

// MyInquiries fetches inquiries the caller sent as a buyer.
func (c *Client) MyInquiries(ctx context.Context, token string) ([]Inquiry, error) {
	return c.inquiryList(ctx, "/inquiries/me", token)
}

// SellerInquiries fetches inquiries received against the caller's listings.
func (c *Client) SellerInquiries(ctx context.Context, token string) ([]Inquiry, error) {
	return c.inquiryList(ctx, "/seller/inquiries", token)
}

func (c *Client) inquiryList(ctx context.Context, endpoint, token string) ([]Inquiry, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, endpoint, token, nil, &raw); err != nil {
		return nil, err
	}
	return normalizeInquiryList(raw)
}

// normalizeInquiryList converts every accepted wire shape into one canonical
// slice before it enters the rest of the gateway. The API has served inquiry
// lists both as a bare array and wrapped in an items/data envelope; nothing
// outside this function is allowed to know that.
func normalizeInquiryList(raw json.RawMessage) ([]Inquiry, error) {
	if len(raw) == 0 {
		return []Inquiry{}, nil
	}

	var bare []Inquiry
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Items []Inquiry `json:"items"`
		Data  []Inquiry `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, apperrors.NewUpstreamError(http.StatusOK, "unexpected inquiry list shape")
	}
	if wrapped.Items != nil {
		return wrapped.Items, nil
	}
	if wrapped.Data != nil {
		return wrapped.Data, nil
	}
	return []Inquiry{}, nil
}
