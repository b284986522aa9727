// Package nav derives the navigation visible to a visitor from their session.
// The catalog is fixed; visibility is a pure function of the role flags, so
// the header any page renders is deterministic for a given session.
package nav

import "github.com/lotusmall/web-gateway/internal/session"

// Item is one navigation entry.
type Item struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Method string `json:"method,omitempty"`
}

var (
	always = []Item{
		{Label: "Home", Path: "/"},
		{Label: "Start Your Business", Path: "/start-business"},
		{Label: "What's New in Vietnam", Path: "/vietnam-news"},
	}
	anonymous = []Item{
		{Label: "Login", Path: "/login"},
		{Label: "New Account", Path: "/register"},
	}
	authenticated = []Item{
		{Label: "Account", Path: "/account"},
	}
	adminOnly = []Item{
		{Label: "Dashboard", Path: "/admin"},
		{Label: "Contacts", Path: "/admin/contacts"},
		{Label: "News CMS", Path: "/admin/news"},
	}
	sellerOnly = []Item{
		{Label: "My Ads", Path: "/my/listings"},
		{Label: "Inquiries", Path: "/seller/inquiries"},
		{Label: "+ New Ad", Path: "/listings/new"},
	}
	buyerOnly = []Item{
		{Label: "My Inquiries", Path: "/my/inquiries"},
	}
	logout = Item{Label: "Logout", Path: "/logout", Method: "POST"}
)

// VisibleActions returns the navigation items this session may see, in
// render order: static links, account, admin section, then the seller or
// buyer partition, then logout. Admin and seller sections are independent;
// an admin who is also a seller sees both.
func VisibleActions(s session.Session) []Item {
	items := make([]Item, 0, 12)
	items = append(items, always...)

	if !s.Authenticated() {
		return append(items, anonymous...)
	}

	items = append(items, authenticated...)
	if s.IsAdmin {
		items = append(items, adminOnly...)
	}
	if s.IsSeller {
		items = append(items, sellerOnly...)
	} else {
		items = append(items, buyerOnly...)
	}
	return append(items, logout)
}
