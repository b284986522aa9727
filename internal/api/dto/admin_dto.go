package dto

import "github.com/lotusmall/web-gateway/internal/upstream"

// AdminCreateUserRequest provisions a new administrator.
type AdminCreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ToInput converts the request to the upstream shape.
func (r AdminCreateUserRequest) ToInput() upstream.AdminUserInput {
	return upstream.AdminUserInput{Name: r.Name, Email: r.Email, Phone: r.Phone, Password: r.Password}
}

// AdminToggleRequest flips the admin flag on an account.
type AdminToggleRequest struct {
	IsAdmin bool `json:"isAdmin"`
}

// ContactRespondRequest marks a contact request responded.
type ContactRespondRequest struct {
	RespondedBy string `json:"respondedBy"`
}

// NewsRequest creates or updates a news entry.
type NewsRequest struct {
	TitleEn     string `json:"titleEn"`
	TitleVi     string `json:"titleVi"`
	CoverURL    string `json:"coverURL"`
	Location    string `json:"location"`
	BodyEn      string `json:"bodyEn"`
	BodyVi      string `json:"bodyVi"`
	EventDate   string `json:"eventDate"`
	IsPublished bool   `json:"isPublished"`
}

// ToInput converts the request to the upstream shape.
func (r NewsRequest) ToInput() upstream.NewsInput {
	return upstream.NewsInput{
		TitleEn:     r.TitleEn,
		TitleVi:     r.TitleVi,
		CoverURL:    r.CoverURL,
		Location:    r.Location,
		BodyEn:      r.BodyEn,
		BodyVi:      r.BodyVi,
		EventDate:   r.EventDate,
		IsPublished: r.IsPublished,
	}
}
