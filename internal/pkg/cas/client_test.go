package cas_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitpainter/vote-v4/internal/pkg/cas"
)

const serviceURL = "http://localhost:8000/auth/cas-callback"

func newValidator(t *testing.T, handler http.HandlerFunc) (*cas.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return cas.NewClient(server.URL, serviceURL), server
}

func TestValidateTicket(t *testing.T) {
	client, _ := newValidator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/serviceValidate", r.URL.Path)
		assert.Equal(t, "ST-abc", r.URL.Query().Get("ticket"))
		assert.Equal(t, serviceURL, r.URL.Query().Get("service"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"authenticated":true,"user":{"id":"42","uid":"162050121","userName":"Alice","username":"alice"}}`))
	})

	info, err := client.ValidateTicket(context.Background(), "ST-abc")
	require.NoError(t, err)

	assert.Equal(t, "42", info.ID)
	assert.Equal(t, "162050121", info.UID)
	assert.Equal(t, "Alice", info.UserName)
	assert.Equal(t, "alice", info.Username)
}

func TestValidateTicket_Refusals(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"rejected ticket",
			func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"authenticated":false}`))
			},
		},
		{
			"missing user object",
			func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"authenticated":true}`))
			},
		},
		{
			"missing identifiers",
			func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"authenticated":true,"user":{"userName":"Alice"}}`))
			},
		},
		{
			"non-json body",
			func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`<html>login page</html>`))
			},
		},
		{
			"upstream error status",
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newValidator(t, tt.handler)

			_, err := client.ValidateTicket(context.Background(), "ST-abc")
			require.ErrorIs(t, err, cas.ErrAuthenticationFailed)
		})
	}
}

func TestValidateTicket_Unreachable(t *testing.T) {
	client, server := newValidator(t, func(_ http.ResponseWriter, _ *http.Request) {})
	server.Close()

	_, err := client.ValidateTicket(context.Background(), "ST-abc")
	require.ErrorIs(t, err, cas.ErrUnreachable)
}

func TestLoginAndLogoutURLs(t *testing.T) {
	client := cas.NewClient("https://sso.example.com", serviceURL)

	assert.Equal(t,
		"https://sso.example.com/login?service=http%3A%2F%2Flocalhost%3A8000%2Fauth%2Fcas-callback",
		client.LoginURL())
	assert.Equal(t,
		"https://sso.example.com/logout?service=http%3A%2F%2Flocalhost%3A8000%2Fauth%2Fcas-callback",
		client.LogoutURL())
}
