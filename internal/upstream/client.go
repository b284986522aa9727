// Package upstream is the typed client for the external marketplace REST API.
// The gateway owns no marketplace data; every record lives behind this
// boundary. External response shapes are normalized here so nothing past this
// package branches on wire shape.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/lotusmall/web-gateway/internal/config"
	apperrors "github.com/lotusmall/web-gateway/pkg/util"
)

// Client talks to the marketplace API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds a client for the configured upstream.
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
	}
}

func (c *Client) url(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.baseURL + endpoint
}

// do performs one JSON round trip. A bearer token is attached when non-empty.
// Non-2xx answers map to the DomainError taxonomy with the upstream's own
// reason/message when one is given; network failures surface as
// UPSTREAM_UNAVAILABLE. The request context governs cancellation, so a
// caller that goes away cancels the call instead of applying a late result.
func (c *Client) do(ctx context.Context, method, endpoint, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(endpoint), reader)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return apperrors.NewUpstreamUnavailable(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewUpstreamUnavailable(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NewUpstreamError(resp.StatusCode, errorReason(raw))
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.NewUpstreamError(resp.StatusCode, fmt.Sprintf("unexpected response shape: %v", err))
	}
	return nil
}

// errorReason pulls a human-readable message out of an upstream error body,
// accepting both the {"reason": ...} and {"message": ...} conventions.
func errorReason(raw []byte) string {
	var body struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Reason != "" {
			return body.Reason
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

// Ping checks upstream reachability for the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/listings"), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode >= 500 {
		return fmt.Errorf("upstream unhealthy: %d", resp.StatusCode)
	}
	return nil
}
