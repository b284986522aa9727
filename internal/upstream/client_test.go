package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lotusmall/web-gateway/internal/config"
	apperrors "github.com/lotusmall/web-gateway/pkg/util"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.UpstreamConfig{BaseURL: srv.URL, TimeoutSeconds: 5}, zap.NewNop())
}

func TestLogin_PersistsUpstreamFieldsVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mona@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":    "tok-abc",
			"isSeller": true,
			"isAdmin":  false,
			"name":     "Mona",
		})
	})

	result, err := client.Login(context.Background(), "mona@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, AuthResult{Token: "tok-abc", IsSeller: true, IsAdmin: false, Name: "Mona"}, result)
}

func TestDo_AttachesBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-xyz", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(Profile{Name: "Mona"})
	})

	_, err := client.Me(context.Background(), "tok-xyz")
	require.NoError(t, err)
}

func TestDo_NoAuthorizationHeaderWithoutToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.Listings(context.Background(), ListingFilter{})
	require.NoError(t, err)
}

func TestDo_MapsUpstreamErrorReason(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"reason":"invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "x@y.z", "bad")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	assert.Equal(t, http.StatusUnauthorized, domainErr.HTTPStatus)
	assert.Equal(t, "invalid credentials", domainErr.Message)
}

func TestDo_MapsMessageFieldAndPlainBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"email already registered"}`))
	})

	_, err := client.Register(context.Background(), RegisterInput{Email: "x@y.z"})
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, "email already registered", domainErr.Message)
}

func TestDo_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // deliberately dead

	client := NewClient(config.UpstreamConfig{BaseURL: srv.URL, TimeoutSeconds: 1}, zap.NewNop())
	_, err := client.News(context.Background())
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", domainErr.Code)
	assert.Equal(t, http.StatusBadGateway, domainErr.HTTPStatus)
}

func TestDo_CanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Listings(ctx, ListingFilter{})
	assert.Error(t, err)
}

func TestInquiryList_ShapeNormalization(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id":"1","buyerName":"A","quantity":2,"status":"new"}]`, 1},
		{"items wrapper", `{"items":[{"id":"1","status":"new"},{"id":"2","status":"closed"}]}`, 2},
		{"data wrapper", `{"data":[{"id":"3","status":"contacted"}]}`, 1},
		{"empty items wrapper", `{"items":[]}`, 0},
		{"empty body", ``, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/inquiries/me", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			})

			inquiries, err := client.MyInquiries(context.Background(), "tok")
			require.NoError(t, err)
			assert.Len(t, inquiries, tt.want)
		})
	}
}

func TestInquiryList_RejectsUnknownShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`"just a string"`))
	})

	_, err := client.SellerInquiries(context.Background(), "tok")
	assert.Error(t, err)
}

func TestListing_NumericSellerID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"title":"Rice 25kg","price":120,"seller":{"id":42}}`))
	})

	listing, err := client.Listing(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "42", listing.OwnerIDString())
	assert.Equal(t, "7", listing.ID.String())
}

func TestUsers_QueryDefaults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "all", q.Get("role"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "50", q.Get("limit"))
		_, _ = w.Write([]byte(`[]`))
	})

	rows, err := client.Users(context.Background(), "tok", UserQuery{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
