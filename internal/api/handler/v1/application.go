package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digitpainter/vote-v4/internal/api/handler/v1/request"
	"github.com/digitpainter/vote-v4/internal/api/handler/v1/response"
	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/service"
)

type ApplicationService interface {
	Apply(ctx context.Context, session domain.Session, app domain.AdminApplication) (domain.AdminApplication, error)
	GetAll(ctx context.Context, status string, skip, limit int) ([]domain.AdminApplication, error)
	GetMine(ctx context.Context, session domain.Session) ([]domain.AdminApplication, error)
	Review(ctx context.Context, reviewer domain.Session, id uint, status, comment string) (domain.AdminApplication, error)
}

type ApplicationHandler struct {
	svc  ApplicationService
	logs AdminLogRecorder
}

func NewApplicationHandler(svc ApplicationService, logs AdminLogRecorder) *ApplicationHandler {
	return &ApplicationHandler{
		svc:  svc,
		logs: logs,
	}
}

// HandleCreateApplication godoc
// @Summary      Apply for an administrator role
// @Tags         application
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ApplicationCreateRequest true "application"
// @Success      201      {object}  domain.AdminApplication
// @Failure      400      {object}  response.Err
// @Router       /admin/applications [post]
func (h *ApplicationHandler) HandleCreateApplication(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	var req request.ApplicationCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	app, err := h.svc.Apply(ctx.Request.Context(), session, domain.AdminApplication{
		AdminType:   req.AdminType,
		CollegeID:   req.CollegeID,
		CollegeName: req.CollegeName,
		Reason:      req.Reason,
	})
	if err != nil {
		h.renderApplicationErr(ctx, "HandleCreateApplication", err)

		return
	}

	ctx.JSON(http.StatusCreated, app)
}

// HandleGetApplications godoc
// @Summary      List admin applications, optionally by status
// @Tags         application
// @Security     BearerAuth
// @Produce      json
// @Param        status   query     string false "pending, approved or rejected"
// @Param        skip     query     int false "offset"
// @Param        limit    query     int false "page size"
// @Success      200      {array}   domain.AdminApplication
// @Router       /admin/applications [get]
func (h *ApplicationHandler) HandleGetApplications(ctx *gin.Context) {
	skip := intQuery(ctx, "skip", 0)
	limit := intQuery(ctx, "limit", 100)

	apps, err := h.svc.GetAll(ctx.Request.Context(), ctx.Query("status"), skip, limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetApplications -> h.svc.GetAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, apps)
}

// HandleGetMyApplications godoc
// @Summary      List the caller's own admin applications
// @Tags         application
// @Security     BearerAuth
// @Produce      json
// @Success      200      {array}   domain.AdminApplication
// @Router       /admin/applications/me [get]
func (h *ApplicationHandler) HandleGetMyApplications(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	apps, err := h.svc.GetMine(ctx.Request.Context(), session)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyApplications -> h.svc.GetMine -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, apps)
}

// HandleReviewApplication godoc
// @Summary      Approve or reject a pending application
// @Tags         application
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int true "application id"
// @Param        payload  body      request.ApplicationReviewRequest true "review decision"
// @Success      200      {object}  domain.AdminApplication
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /admin/applications/{id}/review [post]
func (h *ApplicationHandler) HandleReviewApplication(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, err := uintParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ApplicationReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	app, err := h.svc.Review(ctx.Request.Context(), session, id, req.Status, req.ReviewComment)
	if err != nil {
		h.renderApplicationErr(ctx, "HandleReviewApplication", err)

		return
	}

	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionUpdate, "admin_application", fmt.Sprint(app.ID),
		fmt.Sprintf("reviewed application of %s as %s", app.StaffID, app.Status))

	ctx.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) renderApplicationErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	case errors.Is(err, service.ErrApplicationPendingExists),
		errors.Is(err, service.ErrApplicationAlreadyReviewed),
		errors.Is(err, service.ErrInvalidReviewStatus),
		errors.Is(err, service.ErrCollegeFieldsRequired),
		errors.Is(err, service.ErrInvalidAdminType):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		err = fmt.Errorf("v1.%s -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
