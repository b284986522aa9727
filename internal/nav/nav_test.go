package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lotusmall/web-gateway/internal/session"
)

func paths(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Path)
	}
	return out
}

func TestVisibleActions_Anonymous(t *testing.T) {
	got := paths(VisibleActions(session.Session{}))

	assert.Contains(t, got, "/")
	assert.Contains(t, got, "/login")
	assert.Contains(t, got, "/register")
	assert.NotContains(t, got, "/account")
	assert.NotContains(t, got, "/logout")
	assert.NotContains(t, got, "/admin")
	assert.NotContains(t, got, "/my/listings")
	assert.NotContains(t, got, "/my/inquiries")
}

func TestVisibleActions_AdminNotSeller(t *testing.T) {
	got := paths(VisibleActions(session.Session{Token: "tok", IsAdmin: true}))

	assert.Contains(t, got, "/admin")
	assert.Contains(t, got, "/admin/contacts")
	assert.Contains(t, got, "/admin/news")
	assert.NotContains(t, got, "/my/listings")
	assert.NotContains(t, got, "/seller/inquiries")
	assert.NotContains(t, got, "/listings/new")
	// An admin without the seller flag still gets the buyer partition.
	assert.Contains(t, got, "/my/inquiries")
	assert.Contains(t, got, "/logout")
}

func TestVisibleActions_SellerNotAdmin(t *testing.T) {
	got := paths(VisibleActions(session.Session{Token: "tok", IsSeller: true}))

	assert.Contains(t, got, "/my/listings")
	assert.Contains(t, got, "/seller/inquiries")
	assert.Contains(t, got, "/listings/new")
	assert.NotContains(t, got, "/admin")
	assert.NotContains(t, got, "/admin/contacts")
	assert.NotContains(t, got, "/my/inquiries")
}

func TestVisibleActions_AdminSeller(t *testing.T) {
	got := paths(VisibleActions(session.Session{Token: "tok", IsAdmin: true, IsSeller: true}))

	assert.Contains(t, got, "/admin")
	assert.Contains(t, got, "/my/listings")
	assert.NotContains(t, got, "/my/inquiries")
}

func TestVisibleActions_Deterministic(t *testing.T) {
	sess := session.Session{Token: "tok", IsSeller: true}
	assert.Equal(t, VisibleActions(sess), VisibleActions(sess))
}

func TestVisibleActions_LogoutIsPost(t *testing.T) {
	items := VisibleActions(session.Session{Token: "tok"})
	last := items[len(items)-1]
	assert.Equal(t, "/logout", last.Path)
	assert.Equal(t, "POST", last.Method)
}
