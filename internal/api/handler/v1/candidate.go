package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/digitpainter/vote-v4/internal/api/handler/v1/request"
	"github.com/digitpainter/vote-v4/internal/api/handler/v1/response"
	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/service"
)

var errBadCandidateIDList = errors.New("candidate_ids must be a comma separated list of positive integers")

type CandidateService interface {
	Create(ctx context.Context, session domain.Session, candidate domain.Candidate) (domain.Candidate, error)
	GetByID(ctx context.Context, id uint) (domain.Candidate, error)
	GetAll(ctx context.Context) ([]domain.Candidate, error)
	GetByIDs(ctx context.Context, ids []uint) ([]domain.Candidate, error)
	Update(ctx context.Context, session domain.Session, candidate domain.Candidate) (domain.Candidate, error)
	Delete(ctx context.Context, session domain.Session, id uint) error
}

type CandidateHandler struct {
	svc  CandidateService
	logs AdminLogRecorder
}

func NewCandidateHandler(svc CandidateService, logs AdminLogRecorder) *CandidateHandler {
	return &CandidateHandler{
		svc:  svc,
		logs: logs,
	}
}

// HandleCreateCandidate godoc
// @Summary      Create a candidate
// @Tags         candidate
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CandidateRequest true "candidate"
// @Success      201      {object}  domain.Candidate
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /vote/candidates [post]
func (h *CandidateHandler) HandleCreateCandidate(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	req, ok := bindCandidate(ctx)
	if !ok {
		return
	}

	candidate, err := h.svc.Create(ctx.Request.Context(), session, candidateFromRequest(req))
	if err != nil {
		h.renderCandidateErr(ctx, "HandleCreateCandidate", err)

		return
	}

	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionCreate, "candidate", fmt.Sprint(candidate.ID),
		fmt.Sprintf("created candidate %q", candidate.Name))

	ctx.JSON(http.StatusCreated, candidate)
}

// HandleGetCandidates godoc
// @Summary      List all candidates with live vote counts
// @Tags         candidate
// @Produce      json
// @Success      200      {array}   domain.Candidate
// @Router       /vote/candidates [get]
func (h *CandidateHandler) HandleGetCandidates(ctx *gin.Context) {
	candidates, err := h.svc.GetAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCandidates -> h.svc.GetAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, candidates)
}

// HandleGetCandidatesBatch godoc
// @Summary      Fetch several candidates by id
// @Tags         candidate
// @Produce      json
// @Param        candidate_ids query string true "comma separated candidate ids"
// @Success      200      {array}   domain.Candidate
// @Failure      400      {object}  response.Err
// @Router       /vote/candidates/batch [get]
func (h *CandidateHandler) HandleGetCandidatesBatch(ctx *gin.Context) {
	ids, err := parseIDList(ctx.Query("candidate_ids"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	candidates, err := h.svc.GetByIDs(ctx.Request.Context(), ids)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCandidatesBatch -> h.svc.GetByIDs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, candidates)
}

// HandleGetCandidate godoc
// @Summary      Get one candidate
// @Tags         candidate
// @Produce      json
// @Param        id       path      int true "candidate id"
// @Success      200      {object}  domain.Candidate
// @Failure      404      {object}  response.Err
// @Router       /vote/candidates/{id} [get]
func (h *CandidateHandler) HandleGetCandidate(ctx *gin.Context) {
	id, err := uintParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	candidate, err := h.svc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		h.renderCandidateErr(ctx, "HandleGetCandidate", err)

		return
	}

	ctx.JSON(http.StatusOK, candidate)
}

// HandleUpdateCandidate godoc
// @Summary      Update a candidate
// @Tags         candidate
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int true "candidate id"
// @Param        payload  body      request.CandidateRequest true "candidate"
// @Success      200      {object}  domain.Candidate
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /vote/candidates/{id} [put]
func (h *CandidateHandler) HandleUpdateCandidate(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, err := uintParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req, ok := bindCandidate(ctx)
	if !ok {
		return
	}

	candidate := candidateFromRequest(req)
	candidate.ID = id

	updated, err := h.svc.Update(ctx.Request.Context(), session, candidate)
	if err != nil {
		h.renderCandidateErr(ctx, "HandleUpdateCandidate", err)

		return
	}

	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionUpdate, "candidate", fmt.Sprint(updated.ID),
		fmt.Sprintf("updated candidate %q", updated.Name))

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteCandidate godoc
// @Summary      Delete a candidate and its dependent records
// @Tags         candidate
// @Security     BearerAuth
// @Produce      json
// @Param        id       path      int true "candidate id"
// @Success      200      {object}  response.MessageResponse
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /vote/candidates/{id} [delete]
func (h *CandidateHandler) HandleDeleteCandidate(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, err := uintParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), session, id); err != nil {
		h.renderCandidateErr(ctx, "HandleDeleteCandidate", err)

		return
	}

	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionDelete, "candidate", fmt.Sprint(id),
		"deleted candidate")

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "candidate deleted successfully"})
}

func (h *CandidateHandler) renderCandidateErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrCandidateNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	case errors.Is(err, service.ErrCandidateNameExists):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrCollegeScopeViolated):
		response.RenderErr(ctx, response.ErrForbidden(err))
	default:
		err = fmt.Errorf("v1.%s -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func bindCandidate(ctx *gin.Context) (request.CandidateRequest, bool) {
	var req request.CandidateRequest
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

func candidateFromRequest(req request.CandidateRequest) domain.Candidate {
	return domain.Candidate{
		Name:        req.Name,
		CollegeID:   req.CollegeID,
		CollegeName: req.CollegeName,
		Photo:       req.Photo,
		Bio:         req.Bio,
		Quote:       req.Quote,
		Review:      req.Review,
		VideoURL:    req.VideoURL,
	}
}

func parseIDList(raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errBadCandidateIDList
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, errBadCandidateIDList
		}
		ids = append(ids, uint(value))
	}

	return ids, nil
}
