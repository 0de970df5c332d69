package repository

import (
	"context"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository/dao"
)

var ErrDuplicateVote = dao.ErrDuplicateVote

type VoteDAO interface {
	InsertBatch(ctx context.Context, votes []dao.Vote) ([]dao.VoteInsertError, error)
	HasVoted(ctx context.Context, activityID uint, voterID string) (bool, error)
	FindByVoter(ctx context.Context, voterID string) ([]dao.Vote, error)
	CountByActivityAndVoter(ctx context.Context, activityID uint, voterID string) (int64, error)
	TallyByActivity(ctx context.Context, activityID uint) ([]dao.TallyRow, error)
}

type VoteRepository struct {
	dao VoteDAO
}

func NewVoteRepository(d VoteDAO) *VoteRepository {
	return &VoteRepository{
		dao: d,
	}
}

// CreateBatch persists the votes all-or-nothing and returns per-candidate
// refusals when the batch was rolled back.
func (r *VoteRepository) CreateBatch(ctx context.Context, activityID uint, voterID, source string, candidateIDs []uint) ([]domain.BulkVoteError, error) {
	votes := make([]dao.Vote, 0, len(candidateIDs))
	for _, candidateID := range candidateIDs {
		votes = append(votes, dao.Vote{
			ActivityID:  activityID,
			CandidateID: candidateID,
			VoterID:     voterID,
			Source:      source,
		})
	}

	itemErrs, err := r.dao.InsertBatch(ctx, votes)
	if err != nil {
		return nil, err
	}

	refusals := make([]domain.BulkVoteError, 0, len(itemErrs))
	for _, itemErr := range itemErrs {
		refusals = append(refusals, domain.BulkVoteError{
			CandidateID: itemErr.CandidateID,
			Detail:      itemErr.Err.Error(),
		})
	}

	return refusals, nil
}

func (r *VoteRepository) HasVoted(ctx context.Context, activityID uint, voterID string) (bool, error) {
	return r.dao.HasVoted(ctx, activityID, voterID)
}

func (r *VoteRepository) FindByVoter(ctx context.Context, voterID string) ([]domain.Vote, error) {
	rows, err := r.dao.FindByVoter(ctx, voterID)
	if err != nil {
		return nil, err
	}

	votes := make([]domain.Vote, 0, len(rows))
	for _, row := range rows {
		votes = append(votes, domain.Vote{
			ID:          row.ID,
			CandidateID: row.CandidateID,
			ActivityID:  row.ActivityID,
			VoterID:     row.VoterID,
			Source:      row.Source,
			CreatedAt:   row.CreatedAt,
		})
	}

	return votes, nil
}

func (r *VoteRepository) CountByActivityAndVoter(ctx context.Context, activityID uint, voterID string) (int64, error) {
	return r.dao.CountByActivityAndVoter(ctx, activityID, voterID)
}

func (r *VoteRepository) TallyByActivity(ctx context.Context, activityID uint) ([]domain.CandidateResult, error) {
	rows, err := r.dao.TallyByActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	results := make([]domain.CandidateResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domain.CandidateResult{
			CandidateID:   row.CandidateID,
			CandidateName: row.CandidateName,
			VoteCount:     row.VoteCount,
		})
	}

	return results, nil
}
