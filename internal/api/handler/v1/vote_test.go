package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/digitpainter/vote-v4/internal/api/handler/v1"
	"github.com/digitpainter/vote-v4/internal/api/middleware"
	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/service"
)

type stubVoteService struct {
	result domain.BulkVoteResult
	err    error

	gotActivityID uint
	gotVoterID    string
	gotCandidates []uint
}

func (s *stubVoteService) CreateBulkVotes(_ context.Context, activityID uint, voterID string, candidateIDs []uint) (domain.BulkVoteResult, error) {
	s.gotActivityID = activityID
	s.gotVoterID = voterID
	s.gotCandidates = candidateIDs

	return s.result, s.err
}

func (s *stubVoteService) GetVoterRecords(_ context.Context, _ string) ([]domain.Vote, error) {
	return nil, nil
}

func (s *stubVoteService) GetActivityResults(_ context.Context, _ uint) ([]domain.CandidateResult, error) {
	return nil, nil
}

func newVoteRouter(svc v1.VoteService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/vote/vote/batch",
		func(ctx *gin.Context) {
			ctx.Set(middleware.SessionKey, domain.Session{
				StaffID: "162050121",
				Role:    domain.RoleUndergraduate,
			})
		},
		v1.NewVoteHandler(svc).HandleBulkVote)

	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestHandleBulkVote(t *testing.T) {
	svc := &stubVoteService{
		result: domain.BulkVoteResult{SuccessCount: 2, Errors: []domain.BulkVoteError{}},
	}
	router := newVoteRouter(svc)

	w := postJSON(router, "/vote/vote/batch", `{"activity_id":1,"candidate_ids":[2,3]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success_count":2,"errors":[]}`, w.Body.String())

	// The voter is always the session holder.
	assert.Equal(t, uint(1), svc.gotActivityID)
	assert.Equal(t, "162050121", svc.gotVoterID)
	assert.Equal(t, []uint{2, 3}, svc.gotCandidates)
}

func TestHandleBulkVote_BadPayload(t *testing.T) {
	router := newVoteRouter(&stubVoteService{})

	tests := []struct {
		name string
		body string
	}{
		{"not json", `candidate_ids=2,3`},
		{"missing activity", `{"candidate_ids":[2]}`},
		{"empty selection", `{"activity_id":1,"candidate_ids":[]}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/vote/vote/batch", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "detail")
		})
	}
}

func TestHandleBulkVote_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unknown activity", service.ErrActivityNotFound, http.StatusNotFound},
		{"inactive activity", service.ErrActivityNotActive, http.StatusBadRequest},
		{"window not open", service.ErrActivityNotStarted, http.StatusBadRequest},
		{"window closed", service.ErrActivityEnded, http.StatusBadRequest},
		{"too few", service.ErrTooFewVotes, http.StatusBadRequest},
		{"too many", service.ErrTooManyVotes, http.StatusBadRequest},
		{"off slate", service.ErrCandidateNotInActivity, http.StatusBadRequest},
		{"duplicate ids", service.ErrDuplicateCandidates, http.StatusBadRequest},
		{"already voted", service.ErrAlreadyVoted, http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			router := newVoteRouter(&stubVoteService{err: tt.err})

			w := postJSON(router, "/vote/vote/batch", `{"activity_id":1,"candidate_ids":[2]}`)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), "detail")
		})
	}
}

func TestHandleBulkVote_RefusedBatchCarriesDetails(t *testing.T) {
	svc := &stubVoteService{
		result: domain.BulkVoteResult{
			SuccessCount: 0,
			Errors: []domain.BulkVoteError{
				{CandidateID: 2, Detail: "vote already cast for this candidate"},
			},
		},
		err: service.ErrBulkVoteFailed,
	}
	router := newVoteRouter(svc)

	w := postJSON(router, "/vote/vote/batch", `{"activity_id":1,"candidate_ids":[2]}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"success_count":0,"errors":[{"candidate_id":2,"detail":"vote already cast for this candidate"}]}`,
		w.Body.String())
}
