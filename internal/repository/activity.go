package repository

import (
	"context"
	"fmt"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository/dao"
)

var ErrActivityNotFound = dao.ErrActivityNotFound

type ActivityDAO interface {
	Insert(ctx context.Context, activity dao.Activity, candidateIDs []uint) (dao.Activity, error)
	FindByID(ctx context.Context, id uint) (dao.Activity, error)
	FindAll(ctx context.Context) ([]dao.Activity, error)
	FindActive(ctx context.Context) ([]dao.Activity, error)
	Update(ctx context.Context, activity dao.Activity, candidateIDs []uint) (dao.Activity, error)
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) error
	AssociatedCandidateIDs(ctx context.Context, activityID uint) ([]uint, error)
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(d ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: d,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.Insert(ctx, activityToDAO(activity), activity.CandidateIDs)
	if err != nil {
		return domain.Activity{}, err
	}

	result := activityToDomain(created)
	result.CandidateIDs = activity.CandidateIDs

	return result, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (domain.Activity, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, err
	}

	return r.withSlate(ctx, found)
}

func (r *ActivityRepository) FindAll(ctx context.Context) ([]domain.Activity, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return r.allWithSlates(ctx, found)
}

func (r *ActivityRepository) FindActive(ctx context.Context) ([]domain.Activity, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	return r.allWithSlates(ctx, found)
}

func (r *ActivityRepository) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	updated, err := r.dao.Update(ctx, activityToDAO(activity), activity.CandidateIDs)
	if err != nil {
		return domain.Activity{}, err
	}

	return r.withSlate(ctx, updated)
}

func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *ActivityRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return r.dao.SetActive(ctx, id, active)
}

func (r *ActivityRepository) AssociatedCandidateIDs(ctx context.Context, activityID uint) ([]uint, error) {
	return r.dao.AssociatedCandidateIDs(ctx, activityID)
}

func (r *ActivityRepository) withSlate(ctx context.Context, row dao.Activity) (domain.Activity, error) {
	activity := activityToDomain(row)

	ids, err := r.dao.AssociatedCandidateIDs(ctx, row.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.AssociatedCandidateIDs -> %w", err)
	}
	activity.CandidateIDs = ids

	return activity, nil
}

func (r *ActivityRepository) allWithSlates(ctx context.Context, rows []dao.Activity) ([]domain.Activity, error) {
	activities := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		activity, err := r.withSlate(ctx, row)
		if err != nil {
			return nil, err
		}

		activities = append(activities, activity)
	}

	return activities, nil
}

func activityToDAO(a domain.Activity) dao.Activity {
	return dao.Activity{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		IsActive:    a.IsActive,
		MinVotes:    a.MinVotes,
		MaxVotes:    a.MaxVotes,
	}
}

func activityToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		IsActive:    a.IsActive,
		MinVotes:    a.MinVotes,
		MaxVotes:    a.MaxVotes,
		CreatedAt:   a.CreatedAt,
	}
}
