package upstream

import (
	"context"
	"net/http"
)

// Login exchanges credentials for an auth result. Credentials pass through
// verbatim; the gateway never stores or hashes a password.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var result AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &result); err != nil {
		return AuthResult{}, err
	}
	return result, nil
}

// Register creates an account and returns the same auth shape as Login.
func (c *Client) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", input, &result); err != nil {
		return AuthResult{}, err
	}
	return result, nil
}
