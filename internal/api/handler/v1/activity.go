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

type ActivityService interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, id uint) (domain.Activity, error)
	GetAll(ctx context.Context) ([]domain.Activity, error)
	GetActive(ctx context.Context) ([]domain.Activity, error)
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) (domain.Activity, error)
}

type ActivityHandler struct {
	svc  ActivityService
	logs AdminLogRecorder
}

func NewActivityHandler(svc ActivityService, logs AdminLogRecorder) *ActivityHandler {
	return &ActivityHandler{
		svc:  svc,
		logs: logs,
	}
}

// HandleCreateActivity godoc
// @Summary      Create a voting activity
// @Tags         activity
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ActivityRequest true "activity"
// @Success      201      {object}  domain.Activity
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /vote/activities [post]
func (h *ActivityHandler) HandleCreateActivity(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	req, ok := bindActivity(ctx)
	if !ok {
		return
	}

	activity, err := h.svc.Create(ctx.Request.Context(), domain.Activity{
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MinVotes:     req.MinVotes,
		MaxVotes:     req.MaxVotes,
		CandidateIDs: req.CandidateIDs,
	})
	if err != nil {
		h.renderActivityErr(ctx, "HandleCreateActivity", err)

		return
	}

	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionCreate, "activity", fmt.Sprint(activity.ID),
		fmt.Sprintf("created activity %q", activity.Title))

	ctx.JSON(http.StatusCreated, activity)
}

// HandleGetActivities godoc
// @Summary      List all voting activities
// @Tags         activity
// @Produce      json
// @Success      200      {array}   domain.Activity
// @Router       /vote/activities [get]
func (h *ActivityHandler) HandleGetActivities(ctx *gin.Context) {
	activities, err := h.svc.GetAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetActivities -> h.svc.GetAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleGetActiveActivities godoc
// @Summary      List currently active voting activities
// @Tags         activity
// @Produce      json
// @Success      200      {array}   domain.Activity
// @Router       /vote/activities/active [get]
func (h *ActivityHandler) HandleGetActiveActivities(ctx *gin.Context) {
	activities, err := h.svc.GetActive(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetActiveActivities -> h.svc.GetActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleGetActivity godoc
// @Summary      Get one voting activity
// @Tags         activity
// @Produce      json
// @Param        id       path      int true "activity id"
// @Success      200      {object}  domain.Activity
// @Failure      404      {object}  response.Err
// @Router       /vote/activities/{id} [get]
func (h *ActivityHandler) HandleGetActivity(ctx *gin.Context) {
	id, err := uintParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	activity, err := h.svc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		h.renderActivityErr(ctx, "HandleGetActivity", err)

		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleUpdateActivity godoc
// @Summary      Update a voting activity and its slate
// @Tags         activity
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int true "activity id"
// @Param        payload  body      request.ActivityRequest true "activity"
// @Success      200      {object}  domain.Activity
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /vote/activities/{id} [put]
func (h *ActivityHandler) HandleUpdateActivity(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, err := uintParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req, ok := bindActivity(ctx)
	if !ok {
		return
	}

	activity, err := h.svc.Update(ctx.Request.Context(), domain.Activity{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MinVotes:     req.MinVotes,
		MaxVotes:     req.MaxVotes,
		CandidateIDs: req.CandidateIDs,
	})
	if err != nil {
		h.renderActivityErr(ctx, "HandleUpdateActivity", err)

		return
	}

	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionUpdate, "activity", fmt.Sprint(activity.ID),
		fmt.Sprintf("updated activity %q", activity.Title))

	ctx.JSON(http.StatusOK, activity)
}

// HandleDeleteActivity godoc
// @Summary      Delete a voting activity and its dependent records
// @Tags         activity
// @Security     BearerAuth
// @Produce      json
// @Param        id       path      int true "activity id"
// @Success      200      {object}  response.MessageResponse
// @Failure      404      {object}  response.Err
// @Router       /vote/activities/{id} [delete]
func (h *ActivityHandler) HandleDeleteActivity(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, err := uintParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		h.renderActivityErr(ctx, "HandleDeleteActivity", err)

		return
	}

	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionDelete, "activity", fmt.Sprint(id),
		"deleted activity")

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "activity deleted successfully"})
}

// HandleActivateActivity godoc
// @Summary      Activate an activity, deactivating all others
// @Tags         activity
// @Security     BearerAuth
// @Produce      json
// @Param        id       path      int true "activity id"
// @Success      200      {object}  domain.Activity
// @Failure      404      {object}  response.Err
// @Router       /vote/activities/{id}/activate [put]
func (h *ActivityHandler) HandleActivateActivity(ctx *gin.Context) {
	h.handleSetActive(ctx, true)
}

// HandleDeactivateActivity godoc
// @Summary      Deactivate an activity
// @Tags         activity
// @Security     BearerAuth
// @Produce      json
// @Param        id       path      int true "activity id"
// @Success      200      {object}  domain.Activity
// @Failure      404      {object}  response.Err
// @Router       /vote/activities/{id}/deactivate [put]
func (h *ActivityHandler) HandleDeactivateActivity(ctx *gin.Context) {
	h.handleSetActive(ctx, false)
}

func (h *ActivityHandler) handleSetActive(ctx *gin.Context, active bool) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, err := uintParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	activity, err := h.svc.SetActive(ctx.Request.Context(), id, active)
	if err != nil {
		h.renderActivityErr(ctx, "handleSetActive", err)

		return
	}

	state := "deactivated"
	if active {
		state = "activated"
	}
	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionUpdate, "activity", fmt.Sprint(id),
		fmt.Sprintf("%s activity %q", state, activity.Title))

	ctx.JSON(http.StatusOK, activity)
}

func (h *ActivityHandler) renderActivityErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	case errors.Is(err, service.ErrInvalidVoteBounds),
		errors.Is(err, service.ErrInvalidTimeWindow),
		errors.Is(err, service.ErrUnknownCandidates):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		err = fmt.Errorf("v1.%s -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func bindActivity(ctx *gin.Context) (request.ActivityRequest, bool) {
	var req request.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return req, false
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return req, false
	}

	return req, true
}
