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

type AdminService interface {
	Create(ctx context.Context, admin domain.Administrator) (domain.Administrator, error)
	GetByStaffID(ctx context.Context, staffID string) (domain.Administrator, error)
	GetAll(ctx context.Context, skip, limit int) ([]domain.Administrator, error)
	Update(ctx context.Context, admin domain.Administrator) (domain.Administrator, error)
	Delete(ctx context.Context, staffID string) error
}

type AdminHandler struct {
	svc  AdminService
	logs AdminLogRecorder
}

func NewAdminHandler(svc AdminService, logs AdminLogRecorder) *AdminHandler {
	return &AdminHandler{
		svc:  svc,
		logs: logs,
	}
}

// HandleCreateAdmin godoc
// @Summary      Create an administrator
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.AdminCreateRequest true "administrator"
// @Success      201      {object}  domain.Administrator
// @Failure      400      {object}  response.Err
// @Router       /admin/admins [post]
func (h *AdminHandler) HandleCreateAdmin(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	var req request.AdminCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.Create(ctx.Request.Context(), domain.Administrator{
		StaffID:     req.StaffID,
		Name:        req.Name,
		AdminType:   req.AdminType,
		CollegeID:   req.CollegeID,
		CollegeName: req.CollegeName,
	})
	if err != nil {
		h.renderAdminErr(ctx, "HandleCreateAdmin", err)

		return
	}

	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionCreate, "administrator", admin.StaffID,
		fmt.Sprintf("created %s administrator %q", admin.AdminType, admin.Name))

	ctx.JSON(http.StatusCreated, admin)
}

// HandleGetAdmins godoc
// @Summary      List administrators
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        skip     query     int false "offset"
// @Param        limit    query     int false "page size"
// @Success      200      {array}   domain.Administrator
// @Router       /admin/admins [get]
func (h *AdminHandler) HandleGetAdmins(ctx *gin.Context) {
	skip := intQuery(ctx, "skip", 0)
	limit := intQuery(ctx, "limit", 100)

	admins, err := h.svc.GetAll(ctx.Request.Context(), skip, limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAdmins -> h.svc.GetAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, admins)
}

// HandleGetAdmin godoc
// @Summary      Get one administrator by staff id
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        staff_id path      string true "staff id"
// @Success      200      {object}  domain.Administrator
// @Failure      404      {object}  response.Err
// @Router       /admin/admins/{staff_id} [get]
func (h *AdminHandler) HandleGetAdmin(ctx *gin.Context) {
	admin, err := h.svc.GetByStaffID(ctx.Request.Context(), ctx.Param("staff_id"))
	if err != nil {
		h.renderAdminErr(ctx, "HandleGetAdmin", err)

		return
	}

	ctx.JSON(http.StatusOK, admin)
}

// HandleUpdateAdmin godoc
// @Summary      Update an administrator
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        staff_id path      string true "staff id"
// @Param        payload  body      request.AdminUpdateRequest true "administrator"
// @Success      200      {object}  domain.Administrator
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /admin/admins/{staff_id} [put]
func (h *AdminHandler) HandleUpdateAdmin(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	var req request.AdminUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.Update(ctx.Request.Context(), domain.Administrator{
		StaffID:     ctx.Param("staff_id"),
		Name:        req.Name,
		AdminType:   req.AdminType,
		CollegeID:   req.CollegeID,
		CollegeName: req.CollegeName,
	})
	if err != nil {
		h.renderAdminErr(ctx, "HandleUpdateAdmin", err)

		return
	}

	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionUpdate, "administrator", admin.StaffID,
		fmt.Sprintf("updated administrator %q", admin.Name))

	ctx.JSON(http.StatusOK, admin)
}

// HandleDeleteAdmin godoc
// @Summary      Delete an administrator
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        staff_id path      string true "staff id"
// @Success      200      {object}  response.MessageResponse
// @Failure      404      {object}  response.Err
// @Router       /admin/admins/{staff_id} [delete]
func (h *AdminHandler) HandleDeleteAdmin(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	staffID := ctx.Param("staff_id")
	if err := h.svc.Delete(ctx.Request.Context(), staffID); err != nil {
		h.renderAdminErr(ctx, "HandleDeleteAdmin", err)

		return
	}

	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionDelete, "administrator", staffID,
		"deleted administrator")

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "administrator deleted successfully"})
}

func (h *AdminHandler) renderAdminErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrAdminNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	case errors.Is(err, service.ErrAdminStaffIDExists),
		errors.Is(err, service.ErrCollegeFieldsRequired),
		errors.Is(err, service.ErrInvalidAdminType):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		err = fmt.Errorf("v1.%s -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
