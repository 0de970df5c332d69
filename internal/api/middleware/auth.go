package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/digitpainter/vote-v4/internal/api/handler/v1/response"
	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/service"
)

// SessionKey is where the validated session lives in the gin context.
const SessionKey = "vote/session"

var (
	errNotAuthenticated = errors.New("not authenticated")
	errSessionExpired   = errors.New("invalid or expired session")
)

type SessionReader interface {
	Get(ctx context.Context, token string) (domain.Session, error)
}

type Authenticator struct {
	sessions SessionReader
}

func NewAuthenticator(sessions SessionReader) *Authenticator {
	return &Authenticator{
		sessions: sessions,
	}
}

// RequireSession authenticates the bearer token and enforces the endpoint's
// role and admin-type sets. An empty set means no restriction on that axis.
// Missing or expired sessions yield 401; a valid session with insufficient
// role or admin type yields 403.
func (a *Authenticator) RequireSession(allowedRoles, allowedAdminTypes []string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errNotAuthenticated))

			return
		}

		session, err := a.sessions.Get(ctx.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				response.RenderErr(ctx, response.ErrUnauthorized(errSessionExpired))

				return
			}

			err = fmt.Errorf("middleware.RequireSession -> a.sessions.Get -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))

			return
		}

		if len(allowedRoles) > 0 && !contains(allowedRoles, session.Role) {
			err = fmt.Errorf("access denied, required roles: %v", strings.Join(allowedRoles, ", "))
			response.RenderErr(ctx, response.ErrForbidden(err))

			return
		}

		if len(allowedAdminTypes) > 0 && !contains(allowedAdminTypes, session.AdminType) {
			err = fmt.Errorf("access denied, required admin types: %v", strings.Join(allowedAdminTypes, ", "))
			response.RenderErr(ctx, response.ErrForbidden(err))

			return
		}

		ctx.Set(SessionKey, session)
		ctx.Next()
	}
}

// GetSession returns the session placed in the context by RequireSession.
func GetSession(ctx *gin.Context) (domain.Session, bool) {
	value, exists := ctx.Get(SessionKey)
	if !exists {
		return domain.Session{}, false
	}

	session, ok := value.(domain.Session)

	return session, ok
}

func bearerToken(ctx *gin.Context) (string, bool) {
	header := ctx.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", false
	}

	return token, true
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}

	return false
}
