package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := Session{Token: "tok-1", IsSeller: true, IsAdmin: false, Name: "Mona"}
	require.NoError(t, store.Set(ctx, "sid", sess))

	got, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestMemoryStore_AbsentSessionIsZero(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Equal(t, Session{}, got)
	assert.False(t, got.Authenticated())
}

func TestMemoryStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "sid", Session{Token: "tok", IsSeller: true, Name: "Mona"}))
	require.NoError(t, store.Clear(ctx, "sid"))
	require.NoError(t, store.Clear(ctx, "sid"))

	got, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, Session{}, got)
}

func TestSession_Authenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{IsSeller: true, IsAdmin: true, Name: "ghost"}.Authenticated())
	assert.True(t, Session{Token: "tok"}.Authenticated())
}

func TestBoolField(t *testing.T) {
	// The persisted flag convention is the literal strings "true"/"false".
	assert.Equal(t, "true", boolField(true))
	assert.Equal(t, "false", boolField(false))
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "session:abc", sessionKey("abc"))
}
