package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the uniform error body: {"detail": "..."} with a conventional
// HTTP status code.
type Err struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

func (e *Err) Error() string {
	return e.Detail
}

func NewErr(statusCode int, err error) *Err {
	return &Err{
		StatusCode: statusCode,
		Detail:     err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err)
}

func ErrUnauthorized(err error) *Err {
	return NewErr(http.StatusUnauthorized, err)
}

func ErrForbidden(err error) *Err {
	return NewErr(http.StatusForbidden, err)
}

func ErrNotFound(err error) *Err {
	return NewErr(http.StatusNotFound, err)
}

// ErrBadGateway marks upstream identity-provider failures.
func ErrBadGateway(err error) *Err {
	return NewErr(http.StatusBadGateway, err)
}

// ErrInternalServerError logs the cause but never leaks it to the client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Detail:     "internal server error",
	}
}

func RenderErr(ctx *gin.Context, e *Err) {
	ctx.AbortWithStatusJSON(e.StatusCode, e)
}
