package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository"
)

var (
	ErrInvalidVoteBounds = errors.New("vote bounds must satisfy 1 <= min_votes <= max_votes")
	ErrInvalidTimeWindow = errors.New("start_time must be before end_time")
	ErrUnknownCandidates = errors.New("one or more candidate ids do not exist")
)

type ActivityRepository interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
	FindAll(ctx context.Context) ([]domain.Activity, error)
	FindActive(ctx context.Context) ([]domain.Activity, error)
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) error
}

type ActivityCandidateRepository interface {
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Candidate, error)
}

type ActivityService struct {
	repo       ActivityRepository
	candidates ActivityCandidateRepository
}

func NewActivityService(repo ActivityRepository, candidates ActivityCandidateRepository) *ActivityService {
	return &ActivityService{
		repo:       repo,
		candidates: candidates,
	}
}

func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if err := s.validate(ctx, activity); err != nil {
		return domain.Activity{}, err
	}

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ActivityService) GetByID(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return domain.Activity{}, ErrActivityNotFound
		}

		return domain.Activity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return activity, nil
}

func (s *ActivityService) GetAll(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return activities, nil
}

func (s *ActivityService) GetActive(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return activities, nil
}

// Update replaces the activity fields and the whole candidate slate.
func (s *ActivityService) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if _, err := s.GetByID(ctx, activity.ID); err != nil {
		return domain.Activity{}, err
	}

	if err := s.validate(ctx, activity); err != nil {
		return domain.Activity{}, err
	}

	updated, err := s.repo.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ActivityService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// SetActive activates or deactivates an activity. Activation is exclusive:
// every other active activity is deactivated in the same transaction.
func (s *ActivityService) SetActive(ctx context.Context, id uint, active bool) (domain.Activity, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return domain.Activity{}, err
	}

	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.SetActive -> %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ActivityService) validate(ctx context.Context, activity domain.Activity) error {
	if activity.MinVotes < 1 || activity.MaxVotes < activity.MinVotes {
		return ErrInvalidVoteBounds
	}
	if !activity.StartTime.Before(activity.EndTime) {
		return ErrInvalidTimeWindow
	}

	if len(activity.CandidateIDs) > 0 {
		found, err := s.candidates.FindByIDs(ctx, activity.CandidateIDs)
		if err != nil {
			return fmt.Errorf("s.candidates.FindByIDs -> %w", err)
		}
		if len(found) != len(activity.CandidateIDs) {
			return ErrUnknownCandidates
		}
	}

	return nil
}
