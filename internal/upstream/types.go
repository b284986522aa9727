package upstream

import "github.com/lotusmall/web-gateway/internal/auth"

// AuthResult is the upstream answer to login and registration. The gateway
// persists these four fields verbatim into the session and never infers a
// role flag by any other means.
type AuthResult struct {
	Token    string `json:"token"`
	IsSeller bool   `json:"isSeller"`
	IsAdmin  bool   `json:"isAdmin"`
	Name     string `json:"name"`
}

// RegisterInput creates a new account.
type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	IsSeller    bool   `json:"isSeller,omitempty"`
	FromVietnam bool   `json:"fromVietnam,omitempty"`
	Country     string `json:"country,omitempty"`
}

// Profile is the authenticated account record.
type Profile struct {
	ID       auth.OwnerID `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	IsSeller bool         `json:"isSeller"`
	IsAdmin  bool         `json:"isAdmin"`
}

// ProfilePatch updates account fields; zero-valued fields are omitted.
type ProfilePatch struct {
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// SellerRef carries the owning seller of a listing. Different endpoints
// serialize the id as a string or a number; OwnerID normalizes both.
type SellerRef struct {
	ID auth.OwnerID `json:"id"`
}

// Listing is a marketplace listing.
type Listing struct {
	ID             auth.OwnerID `json:"id"`
	Title          string       `json:"title"`
	Desc           string       `json:"desc"`
	Price          float64      `json:"price"`
	CompareAtPrice float64      `json:"compareAtPrice,omitempty"`
	MinOrderQty    int          `json:"minOrderQty"`
	Stock          int          `json:"stock"`
	ImageURLs      []string     `json:"imageUrls"`
	Category       string       `json:"category,omitempty"`
	Seller         *SellerRef   `json:"seller,omitempty"`
}

// OwnerIDString returns the canonical seller id, empty when unknown.
func (l Listing) OwnerIDString() string {
	if l.Seller == nil {
		return ""
	}
	return l.Seller.ID.String()
}

// ListingInput creates or patches a listing.
type ListingInput struct {
	Title       string   `json:"title"`
	Desc        string   `json:"desc"`
	Price       float64  `json:"price"`
	MinOrderQty int      `json:"minOrderQty"`
	Stock       int      `json:"stock"`
	ImageURLs   []string `json:"imageUrls"`
}

// ListingFilter narrows the public listing feed.
type ListingFilter struct {
	OriginCountry string
}

// Inquiry is a purchase inquiry against a listing.
type Inquiry struct {
	ID         auth.OwnerID `json:"id"`
	Listing    *ListingRef  `json:"listing,omitempty"`
	BuyerName  string       `json:"buyerName"`
	BuyerPhone string       `json:"buyerPhone"`
	BuyerEmail string       `json:"buyerEmail,omitempty"`
	Quantity   int          `json:"quantity"`
	Message    string       `json:"message,omitempty"`
	Status     string       `json:"status"`
	CreatedAt  string       `json:"createdAt,omitempty"`
	UpdatedAt  string       `json:"updatedAt,omitempty"`
}

// ListingRef references the listing an inquiry belongs to.
type ListingRef struct {
	ID auth.OwnerID `json:"id"`
}

// InquiryInput creates an inquiry.
type InquiryInput struct {
	ListingID  string `json:"listingID"`
	BuyerName  string `json:"buyerName"`
	BuyerPhone string `json:"buyerPhone"`
	BuyerEmail string `json:"buyerEmail,omitempty"`
	Quantity   int    `json:"quantity"`
	Message    string `json:"message,omitempty"`
}

// ContactInput is a public contact-us submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
}

// ContactRow is a contact request as seen by moderation.
type ContactRow struct {
	ID          auth.OwnerID `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Company     string       `json:"company,omitempty"`
	Message     string       `json:"message"`
	Status      string       `json:"status"`
	RespondedBy string       `json:"respondedBy,omitempty"`
	CreatedAt   string       `json:"createdAt,omitempty"`
}

// NewsItem is a bilingual news entry from the news feed.
type NewsItem struct {
	ID          auth.OwnerID `json:"id"`
	TitleEn     string       `json:"titleEn"`
	TitleVi     string       `json:"titleVi"`
	CoverURL    string       `json:"coverURL,omitempty"`
	Location    string       `json:"location,omitempty"`
	BodyEn      string       `json:"bodyEn,omitempty"`
	BodyVi      string       `json:"bodyVi,omitempty"`
	EventDate   string       `json:"eventDate,omitempty"`
	IsPublished bool         `json:"isPublished"`
	CreatedAt   string       `json:"createdAt,omitempty"`
	UpdatedAt   string       `json:"updatedAt,omitempty"`
}

// NewsInput creates or updates a news entry.
type NewsInput struct {
	TitleEn     string `json:"titleEn"`
	TitleVi     string `json:"titleVi"`
	CoverURL    string `json:"coverURL,omitempty"`
	Location    string `json:"location,omitempty"`
	BodyEn      string `json:"bodyEn,omitempty"`
	BodyVi      string `json:"bodyVi,omitempty"`
	EventDate   string `json:"eventDate,omitempty"`
	IsPublished bool   `json:"isPublished"`
}

// Stats summarizes the marketplace for the admin dashboard.
type Stats struct {
	Users    int `json:"users"`
	Sellers  int `json:"sellers"`
	Listings int `json:"listings"`
}

// AdminUserRow is one row of the admin user table.
type AdminUserRow struct {
	ID            auth.OwnerID `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	IsSeller      bool         `json:"isSeller"`
	IsAdmin       bool         `json:"isAdmin"`
	ListingsCount int          `json:"listingsCount"`
	CreatedAt     string       `json:"createdAt,omitempty"`
}

// UserQuery filters the admin user table.
type UserQuery struct {
	Role   string
	Search string
	Page   int
	Limit  int
}

// AdminUserInput creates an administrator account.
type AdminUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
