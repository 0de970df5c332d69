package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitpainter/vote-v4/internal/api/middleware"
	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/service"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *service.SessionStore) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	sessions := service.NewSessionStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	auth := middleware.NewAuthenticator(sessions)

	router := gin.New()
	router.GET("/any",
		auth.RequireSession(nil, nil),
		func(ctx *gin.Context) {
			session, ok := middleware.GetSession(ctx)
			require.True(t, ok)
			ctx.JSON(http.StatusOK, gin.H{"staff_id": session.StaffID})
		})
	router.GET("/teachers-only",
		auth.RequireSession([]string{domain.RoleTeacher}, nil),
		func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	router.GET("/school-admins-only",
		auth.RequireSession(nil, []string{domain.AdminTypeSchool}),
		func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	return router, sessions
}

func saveSession(t *testing.T, sessions *service.SessionStore, session domain.Session) {
	t.Helper()

	require.NoError(t, sessions.Save(context.Background(), session))
}

func doGet(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestRequireSession(t *testing.T) {
	router, sessions := newAuthRouter(t)

	saveSession(t, sessions, domain.Session{
		StaffID:     "162050121",
		AccessToken: "student-token",
		Role:        domain.RoleUndergraduate,
	})
	saveSession(t, sessions, domain.Session{
		StaffID:     "1234567",
		AccessToken: "college-admin-token",
		Role:        domain.RoleTeacher,
		AdminType:   domain.AdminTypeCollege,
	})
	saveSession(t, sessions, domain.Session{
		StaffID:     "7654321",
		AccessToken: "school-admin-token",
		Role:        domain.RoleTeacher,
		AdminType:   domain.AdminTypeSchool,
	})

	tests := []struct {
		name     string
		path     string
		token    string
		wantCode int
	}{
		{"missing token", "/any", "", http.StatusUnauthorized},
		{"unknown token", "/any", "nope", http.StatusUnauthorized},
		{"valid session", "/any", "student-token", http.StatusOK},
		{"role denied", "/teachers-only", "student-token", http.StatusForbidden},
		{"role allowed", "/teachers-only", "college-admin-token", http.StatusOK},
		{"admin type denied for plain user", "/school-admins-only", "student-token", http.StatusForbidden},
		{"admin type denied for college admin", "/school-admins-only", "college-admin-token", http.StatusForbidden},
		{"admin type allowed", "/school-admins-only", "school-admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(router, tt.path, tt.token)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				assert.Contains(t, w.Body.String(), "detail")
			}
		})
	}
}

func TestRequireSession_MalformedHeader(t *testing.T) {
	router, sessions := newAuthRouter(t)

	saveSession(t, sessions, domain.Session{StaffID: "162050121", AccessToken: "good"})

	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	req.Header.Set("Authorization", "good") // no Bearer prefix
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
