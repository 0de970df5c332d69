package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository"
	"github.com/digitpainter/vote-v4/internal/repository/dao"
	"github.com/digitpainter/vote-v4/internal/service"
)

type voteFixture struct {
	svc        *service.VoteService
	activities *repository.ActivityRepository
	activity   domain.Activity
	candidates []domain.Candidate
}

// newVoteFixture seeds three candidates and one active activity whose
// voting window spans now, requiring 1 to 2 selections.
func newVoteFixture(t *testing.T, db *gorm.DB) voteFixture {
	t.Helper()

	ctx := context.Background()
	candidateRepo := repository.NewCandidateRepository(dao.NewCandidateDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))

	var candidates []domain.Candidate
	for i := 1; i <= 3; i++ {
		created, err := candidateRepo.Create(ctx, domain.Candidate{
			Name:        fmt.Sprintf("Candidate %d", i),
			CollegeID:   "101",
			CollegeName: "School of Computer Science",
		})
		require.NoError(t, err)
		candidates = append(candidates, created)
	}

	activity, err := activityRepo.Create(ctx, domain.Activity{
		Title:        "Student Council 2026",
		StartTime:    time.Now().Add(-time.Hour),
		EndTime:      time.Now().Add(time.Hour),
		IsActive:     true,
		MinVotes:     1,
		MaxVotes:     2,
		CandidateIDs: []uint{candidates[0].ID, candidates[1].ID, candidates[2].ID},
	})
	require.NoError(t, err)

	svc := service.NewVoteService(
		repository.NewVoteRepository(dao.NewVoteDAO(db)),
		activityRepo,
	)

	return voteFixture{
		svc:        svc,
		activities: activityRepo,
		activity:   activity,
		candidates: candidates,
	}
}

func TestVoteServiceCreateBulkVotes(t *testing.T) {
	f := newVoteFixture(t, newTestDB(t))
	ctx := context.Background()

	result, err := f.svc.CreateBulkVotes(ctx, f.activity.ID, "162050121", []uint{f.candidates[0].ID, f.candidates[1].ID})
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	assert.Empty(t, result.Errors)

	votes, err := f.svc.GetVoterRecords(ctx, "162050121")
	require.NoError(t, err)
	require.Len(t, votes, 2)
	assert.Equal(t, "web", votes[0].Source)
}

func TestVoteServiceCreateBulkVotes_Preconditions(t *testing.T) {
	f := newVoteFixture(t, newTestDB(t))
	ctx := context.Background()

	inactive, err := f.activities.Create(ctx, domain.Activity{
		Title:        "Dormant",
		StartTime:    time.Now().Add(-time.Hour),
		EndTime:      time.Now().Add(time.Hour),
		MinVotes:     1,
		MaxVotes:     2,
		CandidateIDs: []uint{f.candidates[0].ID},
	})
	require.NoError(t, err)

	upcoming, err := f.activities.Create(ctx, domain.Activity{
		Title:        "Upcoming",
		StartTime:    time.Now().Add(time.Hour),
		EndTime:      time.Now().Add(2 * time.Hour),
		IsActive:     true,
		MinVotes:     1,
		MaxVotes:     2,
		CandidateIDs: []uint{f.candidates[0].ID},
	})
	require.NoError(t, err)

	finished, err := f.activities.Create(ctx, domain.Activity{
		Title:        "Finished",
		StartTime:    time.Now().Add(-2 * time.Hour),
		EndTime:      time.Now().Add(-time.Hour),
		IsActive:     true,
		MinVotes:     1,
		MaxVotes:     2,
		CandidateIDs: []uint{f.candidates[0].ID},
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		activityID uint
		candidates []uint
		wantErr    error
	}{
		{"unknown activity", 9999, []uint{f.candidates[0].ID}, service.ErrActivityNotFound},
		{"inactive activity", inactive.ID, []uint{f.candidates[0].ID}, service.ErrActivityNotActive},
		{"activity not started", upcoming.ID, []uint{f.candidates[0].ID}, service.ErrActivityNotStarted},
		{"activity ended", finished.ID, []uint{f.candidates[0].ID}, service.ErrActivityEnded},
		{"too few selections", f.activity.ID, []uint{}, service.ErrTooFewVotes},
		{"too many selections", f.activity.ID, []uint{f.candidates[0].ID, f.candidates[1].ID, f.candidates[2].ID}, service.ErrTooManyVotes},
		{"candidate off the slate", f.activity.ID, []uint{9999}, service.ErrCandidateNotInActivity},
		{"duplicate selection", f.activity.ID, []uint{f.candidates[0].ID, f.candidates[0].ID}, service.ErrDuplicateCandidates},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateBulkVotes(ctx, tt.activityID, "162050121", tt.candidates)
			require.ErrorIs(t, err, tt.wantErr)

			// Nothing may persist after a refused batch.
			votes, err := f.svc.GetVoterRecords(ctx, "162050121")
			require.NoError(t, err)
			assert.Empty(t, votes)
		})
	}
}

func TestVoteServiceCreateBulkVotes_SlateCheckedBeforeDuplicates(t *testing.T) {
	f := newVoteFixture(t, newTestDB(t))
	ctx := context.Background()

	wide, err := f.activities.Create(ctx, domain.Activity{
		Title:        "Wide Window",
		StartTime:    time.Now().Add(-time.Hour),
		EndTime:      time.Now().Add(time.Hour),
		IsActive:     true,
		MinVotes:     1,
		MaxVotes:     3,
		CandidateIDs: []uint{f.candidates[0].ID, f.candidates[1].ID},
	})
	require.NoError(t, err)

	// A submission that both repeats a candidate and reaches off the
	// slate is refused for the off-slate candidate first.
	_, err = f.svc.CreateBulkVotes(ctx, wide.ID, "162050121",
		[]uint{f.candidates[0].ID, f.candidates[0].ID, 9999})
	require.ErrorIs(t, err, service.ErrCandidateNotInActivity)
}

func TestVoteServiceCreateBulkVotes_SecondBatchRefused(t *testing.T) {
	f := newVoteFixture(t, newTestDB(t))
	ctx := context.Background()

	_, err := f.svc.CreateBulkVotes(ctx, f.activity.ID, "162050121", []uint{f.candidates[0].ID, f.candidates[1].ID})
	require.NoError(t, err)

	// The voter already participated, so a fresh candidate is still refused.
	_, err = f.svc.CreateBulkVotes(ctx, f.activity.ID, "162050121", []uint{f.candidates[2].ID})
	require.ErrorIs(t, err, service.ErrAlreadyVoted)

	votes, err := f.svc.GetVoterRecords(ctx, "162050121")
	require.NoError(t, err)
	assert.Len(t, votes, 2)
}

func TestVoteServiceCreateBulkVotes_OtherVotersUnaffected(t *testing.T) {
	f := newVoteFixture(t, newTestDB(t))
	ctx := context.Background()

	_, err := f.svc.CreateBulkVotes(ctx, f.activity.ID, "162050121", []uint{f.candidates[0].ID})
	require.NoError(t, err)

	result, err := f.svc.CreateBulkVotes(ctx, f.activity.ID, "162050122", []uint{f.candidates[0].ID})
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
}

func TestVoteServiceGetActivityResults(t *testing.T) {
	f := newVoteFixture(t, newTestDB(t))
	ctx := context.Background()

	_, err := f.svc.CreateBulkVotes(ctx, f.activity.ID, "162050121", []uint{f.candidates[0].ID, f.candidates[1].ID})
	require.NoError(t, err)
	_, err = f.svc.CreateBulkVotes(ctx, f.activity.ID, "162050122", []uint{f.candidates[0].ID})
	require.NoError(t, err)

	results, err := f.svc.GetActivityResults(ctx, f.activity.ID)
	require.NoError(t, err)

	// Every slate candidate appears, zero-filled, in slate order.
	require.Len(t, results, 3)
	assert.Equal(t, f.candidates[0].ID, results[0].CandidateID)
	assert.Equal(t, int64(2), results[0].VoteCount)
	assert.Equal(t, int64(1), results[1].VoteCount)
	assert.Equal(t, int64(0), results[2].VoteCount)

	_, err = f.svc.GetActivityResults(ctx, 9999)
	require.ErrorIs(t, err, service.ErrActivityNotFound)
}
