package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotusmall/web-gateway/internal/config"
	"github.com/lotusmall/web-gateway/internal/observability"
	"github.com/lotusmall/web-gateway/internal/session"
)

const testSID = "sid-1"

func newGateApp(t *testing.T, sess session.Session) *fiber.App {
	t.Helper()

	store := session.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), testSID, sess))

	cfg := config.SessionConfig{CookieName: "mwg_sid", TTLMinutes: 60}
	app := fiber.New()
	app.Use(session.NewMiddleware(store, cfg).Handle)

	gate := NewGate(observability.NewMetrics())
	app.Get("/any", gate.RequireAuth(), protected)
	app.Get("/seller-only", gate.RequireSeller(), protected)
	app.Get("/buyer-only", gate.RequireBuyer(), protected)
	return app
}

func protected(c *fiber.Ctx) error {
	return c.SendString("protected content")
}

func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: "mwg_sid", Value: testSID})
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRequireAuth_RedirectsAnonymousToLogin(t *testing.T) {
	app := newGateApp(t, session.Session{})

	resp := doGet(t, app, "/any")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fany", resp.Header.Get("Location"))

	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "protected content")
}

func TestRequireAuth_AdmitsAuthenticated(t *testing.T) {
	app := newGateApp(t, session.Session{Token: "tok"})

	resp := doGet(t, app, "/any")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "protected content", string(body))
}

func TestRequireSeller_RedirectsBuyerToBuyerHome(t *testing.T) {
	app := newGateApp(t, session.Session{Token: "tok", IsSeller: false})

	resp := doGet(t, app, "/seller-only")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, BuyerHomePath, resp.Header.Get("Location"))

	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "protected content")
}

func TestRequireSeller_AdmitsSeller(t *testing.T) {
	app := newGateApp(t, session.Session{Token: "tok", IsSeller: true})

	resp := doGet(t, app, "/seller-only")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireBuyer_RedirectsSellerToSellerHome(t *testing.T) {
	app := newGateApp(t, session.Session{Token: "tok", IsSeller: true})

	resp := doGet(t, app, "/buyer-only")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, SellerHomePath, resp.Header.Get("Location"))
}

func TestGates_StrayRoleFlagWithoutToken(t *testing.T) {
	// A role flag present without a token reads as anonymous: token
	// presence is the sole authority for the authenticated decision.
	app := newGateApp(t, session.Session{IsSeller: true, IsAdmin: true})

	for _, path := range []string{"/any", "/seller-only", "/buyer-only"} {
		resp := doGet(t, app, path)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Contains(t, resp.Header.Get("Location"), LoginPath, path)
	}
}
