package dto

import "github.com/lotusmall/web-gateway/internal/upstream"

// ListingRequest creates or patches a listing.
type ListingRequest struct {
	Title       string   `json:"title"`
	Desc        string   `json:"desc"`
	Price       float64  `json:"price"`
	MinOrderQty int      `json:"minOrderQty"`
	Stock       int      `json:"stock"`
	ImageURLs   []string `json:"imageUrls"`
}

// ToInput converts the request to the upstream shape.
func (r ListingRequest) ToInput() upstream.ListingInput {
	return upstream.ListingInput{
		Title:       r.Title,
		Desc:        r.Desc,
		Price:       r.Price,
		MinOrderQty: r.MinOrderQty,
		Stock:       r.Stock,
		ImageURLs:   r.ImageURLs,
	}
}

// Viewer names the listing page presentation for the current visitor.
// Exactly one applies per request.
type Viewer string

const (
	ViewerOwner   Viewer = "owner"
	ViewerGuest   Viewer = "guest"
	ViewerVisitor Viewer = "visitor"
)

// ListingView is the listing detail payload with its viewer presentation.
type ListingView struct {
	Listing  upstream.Listing `json:"listing"`
	Viewer   Viewer           `json:"viewer"`
	LoginURL string           `json:"loginUrl,omitempty"`
}
