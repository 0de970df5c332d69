package repository

import (
	"context"
	"fmt"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository/dao"
)

var (
	ErrCandidateNotFound   = dao.ErrCandidateNotFound
	ErrCandidateNameExists = dao.ErrCandidateNameExists
)

type CandidateDAO interface {
	Insert(ctx context.Context, candidate dao.Candidate) (dao.Candidate, error)
	FindByID(ctx context.Context, id uint) (dao.Candidate, error)
	FindAll(ctx context.Context) ([]dao.Candidate, error)
	FindByIDs(ctx context.Context, ids []uint) ([]dao.Candidate, error)
	Update(ctx context.Context, candidate dao.Candidate) (dao.Candidate, error)
	Delete(ctx context.Context, id uint) error
	CountVotes(ctx context.Context, candidateID uint) (int64, error)
}

type CandidateRepository struct {
	dao CandidateDAO
}

func NewCandidateRepository(d CandidateDAO) *CandidateRepository {
	return &CandidateRepository{
		dao: d,
	}
}

func (r *CandidateRepository) Create(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	created, err := r.dao.Insert(ctx, candidateToDAO(candidate))
	if err != nil {
		return domain.Candidate{}, err
	}

	return candidateToDomain(created), nil
}

func (r *CandidateRepository) FindByID(ctx context.Context, id uint) (domain.Candidate, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, err
	}

	candidate := candidateToDomain(found)
	candidate.VoteCount, err = r.dao.CountVotes(ctx, id)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.CountVotes -> %w", err)
	}

	return candidate, nil
}

func (r *CandidateRepository) FindAll(ctx context.Context) ([]domain.Candidate, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return r.toDomainWithCounts(ctx, found)
}

func (r *CandidateRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Candidate, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return r.toDomainWithCounts(ctx, found)
}

func (r *CandidateRepository) Update(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	updated, err := r.dao.Update(ctx, candidateToDAO(candidate))
	if err != nil {
		return domain.Candidate{}, err
	}

	return candidateToDomain(updated), nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *CandidateRepository) toDomainWithCounts(ctx context.Context, rows []dao.Candidate) ([]domain.Candidate, error) {
	candidates := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		candidate := candidateToDomain(row)

		count, err := r.dao.CountVotes(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("r.dao.CountVotes -> %w", err)
		}
		candidate.VoteCount = count

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

func candidateToDAO(c domain.Candidate) dao.Candidate {
	return dao.Candidate{
		ID:          c.ID,
		Name:        c.Name,
		CollegeID:   c.CollegeID,
		CollegeName: c.CollegeName,
		Photo:       c.Photo,
		Bio:         c.Bio,
		Quote:       c.Quote,
		Review:      c.Review,
		VideoURL:    c.VideoURL,
	}
}

func candidateToDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:          c.ID,
		Name:        c.Name,
		CollegeID:   c.CollegeID,
		CollegeName: c.CollegeName,
		Photo:       c.Photo,
		Bio:         c.Bio,
		Quote:       c.Quote,
		Review:      c.Review,
		VideoURL:    c.VideoURL,
		CreatedAt:   c.CreatedAt,
	}
}
