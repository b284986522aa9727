package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// Listings fetches the public listing feed, optionally filtered by origin country.
func (c *Client) Listings(ctx context.Context, filter ListingFilter) ([]Listing, error) {
	endpoint := "/listings"
	if filter.OriginCountry != "" {
		endpoint += "?originCountry=" + url.QueryEscape(filter.OriginCountry)
	}
	var listings []Listing
	if err := c.do(ctx, http.MethodGet, endpoint, "", nil, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// Listing fetches one listing by id.
func (c *Client) Listing(ctx context.Context, id string) (Listing, error) {
	var listing Listing
	if err := c.do(ctx, http.MethodGet, "/listings/"+url.PathEscape(id), "", nil, &listing); err != nil {
		return Listing{}, err
	}
	return listing, nil
}

// MyListings fetches the caller's own listings.
func (c *Client) MyListings(ctx context.Context, token string) ([]Listing, error) {
	var listings []Listing
	if err := c.do(ctx, http.MethodGet, "/my/listings", token, nil, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// CreateListing publishes a new listing for the authenticated seller.
func (c *Client) CreateListing(ctx context.Context, token string, input ListingInput) (Listing, error) {
	var listing Listing
	if err := c.do(ctx, http.MethodPost, "/listings", token, input, &listing); err != nil {
		return Listing{}, err
	}
	return listing, nil
}

// UpdateListing patches an existing listing.
func (c *Client) UpdateListing(ctx context.Context, token, id string, input ListingInput) (Listing, error) {
	var listing Listing
	if err := c.do(ctx, http.MethodPatch, "/listings/"+url.PathEscape(id), token, input, &listing); err != nil {
		return Listing{}, err
	}
	return listing, nil
}

// DeleteListing removes a listing.
func (c *Client) DeleteListing(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/listings/"+url.PathEscape(id), token, nil, nil)
}
