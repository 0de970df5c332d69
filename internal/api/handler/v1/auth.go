package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digitpainter/vote-v4/internal/api/handler/v1/response"
	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/service"
)

var errMissingTicket = errors.New("ticket is required")

type AuthService interface {
	Login(ctx context.Context, ticket string) (domain.Session, error)
	Logout(ctx context.Context, token string) (string, error)
	LoginURL() string
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

// HandleCASLogin godoc
// @Summary      Redirect to the SSO login page
// @Tags         auth
// @Success      302
// @Router       /auth/cas-login [get]
func (h *AuthHandler) HandleCASLogin(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, h.svc.LoginURL())
}

// HandleCASCallback godoc
// @Summary      Exchange a SSO ticket for a session token
// @Tags         auth
// @Produce      json
// @Param        ticket   query     string true "single-use ticket"
// @Success      200      {object}  domain.Session
// @Failure      401      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /auth/cas-callback [get]
func (h *AuthHandler) HandleCASCallback(ctx *gin.Context) {
	ticket := ctx.Query("ticket")
	if ticket == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errMissingTicket))

		return
	}

	session, err := h.svc.Login(ctx.Request.Context(), ticket)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrAuthenticationFailed))

			return
		}
		if errors.Is(err, service.ErrValidatorUnreachable) {
			response.RenderErr(ctx, response.ErrBadGateway(service.ErrValidatorUnreachable))

			return
		}

		err = fmt.Errorf("v1.HandleCASCallback -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, session)
}

// HandleGetMe godoc
// @Summary      Get the current authenticated user
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200      {object}  domain.Session
// @Failure      401      {object}  response.Err
// @Router       /auth/users/me [get]
func (h *AuthHandler) HandleGetMe(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// HandleLogout godoc
// @Summary      Delete the current session
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200      {object}  response.LogoutResponse
// @Failure      401      {object}  response.Err
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	logoutURL, err := h.svc.Logout(ctx.Request.Context(), session.AccessToken)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogout -> h.svc.Logout -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LogoutResponse{
		Message:   "logged out successfully",
		LogoutURL: logoutURL,
	})
}
