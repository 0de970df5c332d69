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

type VoteService interface {
	CreateBulkVotes(ctx context.Context, activityID uint, voterID string, candidateIDs []uint) (domain.BulkVoteResult, error)
	GetVoterRecords(ctx context.Context, voterID string) ([]domain.Vote, error)
	GetActivityResults(ctx context.Context, activityID uint) ([]domain.CandidateResult, error)
}

type VoteHandler struct {
	svc VoteService
}

func NewVoteHandler(svc VoteService) *VoteHandler {
	return &VoteHandler{
		svc: svc,
	}
}

// HandleBulkVote godoc
// @Summary      Cast one ballot per selected candidate, all-or-nothing
// @Tags         vote
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.BulkVoteRequest true "batch submission"
// @Success      200      {object}  domain.BulkVoteResult
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /vote/vote/batch [post]
func (h *VoteHandler) HandleBulkVote(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	var req request.BulkVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.CreateBulkVotes(ctx.Request.Context(), req.ActivityID, session.StaffID, req.CandidateIDs)
	if err != nil {
		h.renderVoteErr(ctx, result, err)

		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *VoteHandler) renderVoteErr(ctx *gin.Context, result domain.BulkVoteResult, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	case errors.Is(err, service.ErrActivityNotActive),
		errors.Is(err, service.ErrActivityNotStarted),
		errors.Is(err, service.ErrActivityEnded),
		errors.Is(err, service.ErrTooFewVotes),
		errors.Is(err, service.ErrTooManyVotes),
		errors.Is(err, service.ErrCandidateNotInActivity),
		errors.Is(err, service.ErrDuplicateCandidates),
		errors.Is(err, service.ErrAlreadyVoted):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrBulkVoteFailed):
		// Per-candidate refusals ride in the body so the client can see
		// exactly which selections were rejected.
		ctx.AbortWithStatusJSON(http.StatusBadRequest, result)
	default:
		err = fmt.Errorf("v1.HandleBulkVote -> h.svc.CreateBulkVotes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleMyVotes godoc
// @Summary      List the caller's vote records
// @Tags         vote
// @Security     BearerAuth
// @Produce      json
// @Success      200      {array}   domain.Vote
// @Failure      401      {object}  response.Err
// @Router       /vote/votes/me [get]
func (h *VoteHandler) HandleMyVotes(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	votes, err := h.svc.GetVoterRecords(ctx.Request.Context(), session.StaffID)
	if err != nil {
		err = fmt.Errorf("v1.HandleMyVotes -> h.svc.GetVoterRecords -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, votes)
}

// HandleActivityResults godoc
// @Summary      Tally an activity, zero-filled over its full slate
// @Tags         vote
// @Security     BearerAuth
// @Produce      json
// @Param        id       path      int true "activity id"
// @Success      200      {object}  response.ActivityResultsResponse
// @Failure      404      {object}  response.Err
// @Router       /vote/activities/{id}/results [get]
func (h *VoteHandler) HandleActivityResults(ctx *gin.Context) {
	id, err := uintParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	results, err := h.svc.GetActivityResults(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleActivityResults -> h.svc.GetActivityResults -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.ActivityResultsResponse{
		ActivityID: id,
		Results:    results,
	})
}
