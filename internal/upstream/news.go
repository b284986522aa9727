package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// News fetches the published news feed.
func (c *Client) News(ctx context.Context) ([]NewsItem, error) {
	var items []NewsItem
	if err := c.do(ctx, http.MethodGet, "/news", "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AdminNews fetches all news entries including unpublished drafts.
func (c *Client) AdminNews(ctx context.Context, token string) ([]NewsItem, error) {
	var items []NewsItem
	if err := c.do(ctx, http.MethodGet, "/admin/news", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateNews adds a news entry.
func (c *Client) CreateNews(ctx context.Context, token string, input NewsInput) (NewsItem, error) {
	var item NewsItem
	if err := c.do(ctx, http.MethodPost, "/admin/news", token, input, &item); err != nil {
		return NewsItem{}, err
	}
	return item, nil
}

// UpdateNews patches a news entry.
func (c *Client) UpdateNews(ctx context.Context, token, id string, input NewsInput) (NewsItem, error) {
	var item NewsItem
	if err := c.do(ctx, http.MethodPatch, "/admin/news/"+url.PathEscape(id), token, input, &item); err != nil {
		return NewsItem{}, err
	}
	return item, nil
}

// DeleteNews removes a news entry.
func (c *Client) DeleteNews(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/news/"+url.PathEscape(id), token, nil, nil)
}
