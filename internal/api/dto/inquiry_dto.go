package dto

import "github.com/lotusmall/web-gateway/internal/upstream"

// InquiryRequest submits a purchase inquiry.
type InquiryRequest struct {
	ListingID  string `json:"listingID"`
	BuyerName  string `json:"buyerName"`
	BuyerPhone string `json:"buyerPhone"`
	BuyerEmail string `json:"buyerEmail"`
	Quantity   int    `json:"quantity"`
	Message    string `json:"message"`
}

// ToInput converts the request to the upstream shape.
func (r InquiryRequest) ToInput() upstream.InquiryInput {
	return upstream.InquiryInput{
		ListingID:  r.ListingID,
		BuyerName:  r.BuyerName,
		BuyerPhone: r.BuyerPhone,
		BuyerEmail: r.BuyerEmail,
		Quantity:   r.Quantity,
		Message:    r.Message,
	}
}

// ContactRequest submits a contact-us request.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// ToInput converts the request to the upstream shape.
func (r ContactRequest) ToInput() upstream.ContactInput {
	return upstream.ContactInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		Message: r.Message,
	}
}
