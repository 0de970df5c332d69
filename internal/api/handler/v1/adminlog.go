package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/digitpainter/vote-v4/internal/api/handler/v1/response"
	"github.com/digitpainter/vote-v4/internal/domain"
)

type AdminLogService interface {
	GetAll(ctx context.Context, filter domain.AdminLogFilter) ([]domain.AdminLog, error)
}

type AdminLogHandler struct {
	svc AdminLogService
}

func NewAdminLogHandler(svc AdminLogService) *AdminLogHandler {
	return &AdminLogHandler{
		svc: svc,
	}
}

// HandleGetAdminLogs godoc
// @Summary      List the audit trail, newest first
// @Tags         admin-log
// @Security     BearerAuth
// @Produce      json
// @Param        admin_id      query  string false "filter by actor staff id"
// @Param        action_type   query  string false "filter by action type"
// @Param        resource_type query  string false "filter by resource type"
// @Param        start_date    query  string false "RFC 3339 lower bound"
// @Param        end_date      query  string false "RFC 3339 upper bound"
// @Param        skip          query  int false "offset"
// @Param        limit         query  int false "page size"
// @Success      200      {array}   domain.AdminLog
// @Failure      400      {object}  response.Err
// @Router       /admin-logs [get]
func (h *AdminLogHandler) HandleGetAdminLogs(ctx *gin.Context) {
	filter := domain.AdminLogFilter{
		AdminID:      ctx.Query("admin_id"),
		ActionType:   ctx.Query("action_type"),
		ResourceType: ctx.Query("resource_type"),
		Skip:         intQuery(ctx, "skip", 0),
		Limit:        intQuery(ctx, "limit", 100),
	}

	var err error
	if filter.StartDate, err = parseTimeQuery(ctx, "start_date"); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	if filter.EndDate, err = parseTimeQuery(ctx, "end_date"); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	logs, err := h.svc.GetAll(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAdminLogs -> h.svc.GetAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, logs)
}

func parseTimeQuery(ctx *gin.Context, name string) (time.Time, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}

	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an RFC 3339 timestamp", name)
	}

	return value, nil
}
