package dto

import (
	"github.com/lotusmall/web-gateway/internal/nav"
	"github.com/lotusmall/web-gateway/internal/session"
)

// SessionView is the advisory session state embedded in every page payload.
// It steers what the client renders; it grants nothing.
type SessionView struct {
	Authenticated bool   `json:"authenticated"`
	Name          string `json:"name,omitempty"`
	IsSeller      bool   `json:"isSeller"`
	IsAdmin       bool   `json:"isAdmin"`
}

// NewSessionView projects a session into its page representation.
func NewSessionView(s session.Session) SessionView {
	return SessionView{
		Authenticated: s.Authenticated(),
		Name:          s.Name,
		IsSeller:      s.IsSeller,
		IsAdmin:       s.IsAdmin,
	}
}

// Page is the envelope every view endpoint returns.
type Page struct {
	Data    any         `json:"data"`
	Nav     []nav.Item  `json:"nav"`
	Session SessionView `json:"session"`
}

// NewPage assembles a page envelope for the given session.
func NewPage(s session.Session, data any) Page {
	return Page{
		Data:    data,
		Nav:     nav.VisibleActions(s),
		Session: NewSessionView(s),
	}
}
