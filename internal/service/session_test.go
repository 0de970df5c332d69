package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/service"
)

func TestSessionStore(t *testing.T) {
	store, mr := newTestSessionStore(t, 24*time.Hour)

	session := domain.Session{
		StaffID:     "162050121",
		Username:    "Alice",
		AccessToken: "token-1",
		Role:        domain.RoleUndergraduate,
	}

	require.NoError(t, store.Save(context.Background(), session))

	got, err := store.Get(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	alive, err := store.Exists(context.Background(), "token-1")
	require.NoError(t, err)
	assert.True(t, alive)

	ttl := mr.TTL("session:token-1")
	assert.Equal(t, 24*time.Hour, ttl)

	require.NoError(t, store.Delete(context.Background(), "token-1"))

	_, err = store.Get(context.Background(), "token-1")
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestSessionStore_Expiry(t *testing.T) {
	store, mr := newTestSessionStore(t, time.Minute)

	session := domain.Session{StaffID: "162050121", AccessToken: "token-1"}
	require.NoError(t, store.Save(context.Background(), session))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(context.Background(), "token-1")
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Minute)

	_, err := store.Get(context.Background(), "nope")
	require.ErrorIs(t, err, service.ErrSessionNotFound)

	alive, err := store.Exists(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, alive)

	// Deleting a missing token is not an error.
	require.NoError(t, store.Delete(context.Background(), "nope"))
}
