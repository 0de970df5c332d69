package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository"
)

var (
	ErrActivityNotFound       = repository.ErrActivityNotFound
	ErrActivityNotActive      = errors.New("activity is not active")
	ErrActivityNotStarted     = errors.New("activity has not started yet")
	ErrActivityEnded          = errors.New("activity has already ended")
	ErrTooFewVotes            = errors.New("not enough candidates selected")
	ErrTooManyVotes           = errors.New("too many candidates selected")
	ErrCandidateNotInActivity = errors.New("candidate is not part of this activity")
	ErrDuplicateCandidates    = errors.New("duplicate candidate ids in submission")
	ErrAlreadyVoted           = errors.New("voter has already voted in this activity")
	ErrBulkVoteFailed         = errors.New("bulk vote rejected")
)

type VoteRepository interface {
	CreateBatch(ctx context.Context, activityID uint, voterID, source string, candidateIDs []uint) ([]domain.BulkVoteError, error)
	HasVoted(ctx context.Context, activityID uint, voterID string) (bool, error)
	FindByVoter(ctx context.Context, voterID string) ([]domain.Vote, error)
	TallyByActivity(ctx context.Context, activityID uint) ([]domain.CandidateResult, error)
}

type VoteActivityRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
	AssociatedCandidateIDs(ctx context.Context, activityID uint) ([]uint, error)
}

type VoteService struct {
	repo       VoteRepository
	activities VoteActivityRepository
	now        func() time.Time
}

func NewVoteService(repo VoteRepository, activities VoteActivityRepository) *VoteService {
	return &VoteService{
		repo:       repo,
		activities: activities,
		now:        time.Now,
	}
}

// CreateBulkVotes casts one ballot per candidate id, all-or-nothing.
// Preconditions are checked in a fixed order and the first failure wins;
// nothing is persisted before the batch insert. The pre-check for prior
// participation is a fast path only: the uniqueness constraint inside the
// batch transaction is the authoritative duplicate defense.
func (s *VoteService) CreateBulkVotes(ctx context.Context, activityID uint, voterID string, candidateIDs []uint) (domain.BulkVoteResult, error) {
	activity, err := s.activities.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return domain.BulkVoteResult{}, ErrActivityNotFound
		}

		return domain.BulkVoteResult{}, fmt.Errorf("s.activities.FindByID -> %w", err)
	}

	if !activity.IsActive {
		return domain.BulkVoteResult{}, ErrActivityNotActive
	}

	now := s.now()
	if now.Before(activity.StartTime) {
		return domain.BulkVoteResult{}, ErrActivityNotStarted
	}
	if now.After(activity.EndTime) {
		return domain.BulkVoteResult{}, ErrActivityEnded
	}

	if len(candidateIDs) < activity.MinVotes {
		return domain.BulkVoteResult{}, ErrTooFewVotes
	}
	if len(candidateIDs) > activity.MaxVotes {
		return domain.BulkVoteResult{}, ErrTooManyVotes
	}

	slate, err := s.activities.AssociatedCandidateIDs(ctx, activityID)
	if err != nil {
		return domain.BulkVoteResult{}, fmt.Errorf("s.activities.AssociatedCandidateIDs -> %w", err)
	}
	onSlate := make(map[uint]bool, len(slate))
	for _, id := range slate {
		onSlate[id] = true
	}

	// Slate membership is checked over the whole submission before
	// looking for duplicates.
	for _, id := range candidateIDs {
		if !onSlate[id] {
			return domain.BulkVoteResult{}, ErrCandidateNotInActivity
		}
	}

	seen := make(map[uint]bool, len(candidateIDs))
	for _, id := range candidateIDs {
		if seen[id] {
			return domain.BulkVoteResult{}, ErrDuplicateCandidates
		}
		seen[id] = true
	}

	voted, err := s.repo.HasVoted(ctx, activityID, voterID)
	if err != nil {
		return domain.BulkVoteResult{}, fmt.Errorf("s.repo.HasVoted -> %w", err)
	}
	if voted {
		return domain.BulkVoteResult{}, ErrAlreadyVoted
	}

	refusals, err := s.repo.CreateBatch(ctx, activityID, voterID, "web", candidateIDs)
	if err != nil {
		return domain.BulkVoteResult{}, fmt.Errorf("s.repo.CreateBatch -> %w", err)
	}

	if len(refusals) > 0 {
		return domain.BulkVoteResult{
			SuccessCount: 0,
			Errors:       refusals,
		}, ErrBulkVoteFailed
	}

	zap.L().Info("bulk vote committed",
		zap.Uint("activity_id", activityID),
		zap.String("voter_id", voterID),
		zap.Int("ballots", len(candidateIDs)),
	)

	return domain.BulkVoteResult{
		SuccessCount: len(candidateIDs),
		Errors:       []domain.BulkVoteError{},
	}, nil
}

func (s *VoteService) GetVoterRecords(ctx context.Context, voterID string) ([]domain.Vote, error) {
	votes, err := s.repo.FindByVoter(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByVoter -> %w", err)
	}

	return votes, nil
}

// GetActivityResults tallies votes per slate candidate.
func (s *VoteService) GetActivityResults(ctx context.Context, activityID uint) ([]domain.CandidateResult, error) {
	if _, err := s.activities.FindByID(ctx, activityID); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, ErrActivityNotFound
		}

		return nil, fmt.Errorf("s.activities.FindByID -> %w", err)
	}

	results, err := s.repo.TallyByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.TallyByActivity -> %w", err)
	}

	return results, nil
}
