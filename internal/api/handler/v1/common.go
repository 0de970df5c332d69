package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/digitpainter/vote-v4/internal/api/handler/v1/response"
	"github.com/digitpainter/vote-v4/internal/api/middleware"
	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/service"
)

var errSessionMissing = errors.New("session missing from request context")

// AdminLogRecorder appends audit entries for administrative mutations.
type AdminLogRecorder interface {
	Record(ctx context.Context, session domain.Session, meta service.RequestMeta, actionType, resourceType, resourceID, description string)
}

func uintParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}

	return uint(value), nil
}

func intQuery(ctx *gin.Context, name string, fallback int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}

func requestMeta(ctx *gin.Context) service.RequestMeta {
	return service.RequestMeta{
		IPAddress: ctx.ClientIP(),
		UserAgent: ctx.Request.UserAgent(),
	}
}

// sessionOrAbort fetches the authenticated session; handlers behind
// RequireSession treat its absence as a wiring bug.
func sessionOrAbort(ctx *gin.Context) (domain.Session, bool) {
	session, ok := middleware.GetSession(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrInternalServerError(errSessionMissing))

		return domain.Session{}, false
	}

	return session, true
}
