package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// SendContact submits a public contact-us request.
func (c *Client) SendContact(ctx context.Context, input ContactInput) error {
	return c.do(ctx, http.MethodPost, "/contact", "", input, nil)
}

// Contacts lists contact requests for moderation, optionally by status.
func (c *Client) Contacts(ctx context.Context, token, status string) ([]ContactRow, error) {
	endpoint := "/admin/contacts"
	if status != "" && status != "all" {
		endpoint += "?status=" + url.QueryEscape(status)
	}
	var rows []ContactRow
	if err := c.do(ctx, http.MethodGet, endpoint, token, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// RespondContact marks a contact request as responded.
func (c *Client) RespondContact(ctx context.Context, token, id, respondedBy string) error {
	body := map[string]string{"respondedBy": respondedBy}
	return c.do(ctx, http.MethodPatch, "/admin/contacts/"+url.PathEscape(id)+"/respond", token, body, nil)
}
