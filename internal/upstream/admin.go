package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Stats fetches marketplace totals for the admin dashboard.
func (c *Client) Stats(ctx context.Context, token string) (Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", token, nil, &stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// Users lists accounts for the admin user table.
func (c *Client) Users(ctx context.Context, token string, q UserQuery) ([]AdminUserRow, error) {
	if q.Role == "" {
		q.Role = "all"
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 50
	}
	params := url.Values{
		"role":   {q.Role},
		"search": {q.Search},
		"page":   {strconv.Itoa(q.Page)},
		"limit":  {strconv.Itoa(q.Limit)},
	}
	var rows []AdminUserRow
	if err := c.do(ctx, http.MethodGet, "/admin/users?"+params.Encode(), token, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(userID), token, nil, nil)
}

// DeleteUserListings removes every listing belonging to a seller.
func (c *Client) DeleteUserListings(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(userID)+"/listings", token, nil, nil)
}

// SetUserAdmin toggles the admin flag on an account.
func (c *Client) SetUserAdmin(ctx context.Context, token, userID string, isAdmin bool) error {
	body := map[string]bool{"isAdmin": isAdmin}
	return c.do(ctx, http.MethodPatch, "/admin/users/"+url.PathEscape(userID)+"/admin", token, body, nil)
}

// CreateAdminUser provisions a new administrator account.
func (c *Client) CreateAdminUser(ctx context.Context, token string, input AdminUserInput) (AdminUserRow, error) {
	var row AdminUserRow
	if err := c.do(ctx, http.MethodPost, "/admin/users/admin", token, input, &row); err != nil {
		return AdminUserRow{}, err
	}
	return row, nil
}
