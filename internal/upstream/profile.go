package upstream

import (
	"context"
	"net/http"
)

// Me fetches the authenticated profile.
func (c *Client) Me(ctx context.Context, token string) (Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/me", token, nil, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// UpdateMe patches the authenticated profile and returns the updated record.
func (c *Client) UpdateMe(ctx context.Context, token string, patch ProfilePatch) (Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPatch, "/me", token, patch, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// DeleteMe removes the authenticated account.
func (c *Client) DeleteMe(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/me", token, nil, nil)
}
