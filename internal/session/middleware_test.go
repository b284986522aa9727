package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotusmall/web-gateway/internal/config"
)

func testCfg() config.SessionConfig {
	return config.SessionConfig{CookieName: "mwg_sid", TTLMinutes: 60}
}

func TestMiddleware_MintsCookieForNewVisitor(t *testing.T) {
	mw := NewMiddleware(NewMemoryStore(), testCfg())

	app := fiber.New()
	app.Use(mw.Handle)
	app.Get("/", func(c *fiber.Ctx) error {
		assert.NotEmpty(t, IDFromContext(c))
		assert.Equal(t, Session{}, FromContext(c))
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var sidCookie string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "mwg_sid" {
			sidCookie = cookie.Value
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.NotEmpty(t, sidCookie)
}

func TestMiddleware_LoadsExistingSession(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "known-sid", Session{Token: "tok", Name: "Mona"}))

	mw := NewMiddleware(store, testCfg())
	app := fiber.New()
	app.Use(mw.Handle)
	app.Get("/", func(c *fiber.Ctx) error {
		sess := FromContext(c)
		assert.Equal(t, "tok", sess.Token)
		assert.Equal(t, "Mona", sess.Name)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "mwg_sid", Value: "known-sid"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddleware_SaveVisibleWithinSameRequest(t *testing.T) {
	store := NewMemoryStore()
	mw := NewMiddleware(store, testCfg())

	app := fiber.New()
	app.Use(mw.Handle)
	app.Post("/login", func(c *fiber.Ctx) error {
		require.NoError(t, mw.Save(c, Session{Token: "fresh", IsSeller: true, Name: "Mona"}))
		// Read-after-write within the same request sees the write.
		sess := FromContext(c)
		assert.Equal(t, "fresh", sess.Token)
		assert.True(t, sess.IsSeller)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(&http.Cookie{Name: "mwg_sid", Value: "sid-x"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := store.Get(context.Background(), "sid-x")
	require.NoError(t, err)
	assert.Equal(t, "fresh", stored.Token)
}

func TestMiddleware_DestroyIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "sid-y", Session{Token: "tok", IsAdmin: true}))

	mw := NewMiddleware(store, testCfg())
	app := fiber.New()
	app.Use(mw.Handle)
	app.Post("/logout", func(c *fiber.Ctx) error {
		require.NoError(t, mw.Destroy(c))
		require.NoError(t, mw.Destroy(c))
		assert.Equal(t, Session{}, FromContext(c))
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "mwg_sid", Value: "sid-y"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := store.Get(context.Background(), "sid-y")
	require.NoError(t, err)
	assert.Equal(t, Session{}, stored)
}
