package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository"
)

var (
	ErrCandidateNotFound    = repository.ErrCandidateNotFound
	ErrCandidateNameExists  = repository.ErrCandidateNameExists
	ErrCollegeScopeViolated = errors.New("college administrators may only manage candidates of their own college")
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error)
	FindByID(ctx context.Context, id uint) (domain.Candidate, error)
	FindAll(ctx context.Context) ([]domain.Candidate, error)
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Candidate, error)
	Update(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error)
	Delete(ctx context.Context, id uint) error
}

type CandidateService struct {
	repo CandidateRepository
}

func NewCandidateService(repo CandidateRepository) *CandidateService {
	return &CandidateService{
		repo: repo,
	}
}

// Create persists a candidate. College-scoped admins may only create
// candidates belonging to their own college.
func (s *CandidateService) Create(ctx context.Context, session domain.Session, candidate domain.Candidate) (domain.Candidate, error) {
	if err := checkCollegeScope(session, candidate.CollegeID); err != nil {
		return domain.Candidate{}, err
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNameExists) {
			return domain.Candidate{}, ErrCandidateNameExists
		}

		return domain.Candidate{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CandidateService) GetByID(ctx context.Context, id uint) (domain.Candidate, error) {
	candidate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return domain.Candidate{}, ErrCandidateNotFound
		}

		return domain.Candidate{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return candidate, nil
}

func (s *CandidateService) GetAll(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return candidates, nil
}

func (s *CandidateService) GetByIDs(ctx context.Context, ids []uint) ([]domain.Candidate, error) {
	candidates, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByIDs -> %w", err)
	}

	return candidates, nil
}

func (s *CandidateService) Update(ctx context.Context, session domain.Session, candidate domain.Candidate) (domain.Candidate, error) {
	existing, err := s.GetByID(ctx, candidate.ID)
	if err != nil {
		return domain.Candidate{}, err
	}

	// Scope applies to both the stored college and the requested one, so a
	// college admin can neither grab another college's candidate nor move
	// one of their own out of scope.
	if err = checkCollegeScope(session, existing.CollegeID); err != nil {
		return domain.Candidate{}, err
	}
	if err = checkCollegeScope(session, candidate.CollegeID); err != nil {
		return domain.Candidate{}, err
	}

	updated, err := s.repo.Update(ctx, candidate)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNameExists) {
			return domain.Candidate{}, ErrCandidateNameExists
		}

		return domain.Candidate{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CandidateService) Delete(ctx context.Context, session domain.Session, id uint) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err = checkCollegeScope(session, existing.CollegeID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func checkCollegeScope(session domain.Session, collegeID string) error {
	if session.IsCollegeAdmin() && session.AdminCollegeID != collegeID {
		return ErrCollegeScopeViolated
	}

	return nil
}
