package repository

import (
	"context"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository/dao"
)

var ErrApplicationNotFound = dao.ErrApplicationNotFound

type ApplicationDAO interface {
	Insert(ctx context.Context, app dao.AdminApplication) (dao.AdminApplication, error)
	FindByID(ctx context.Context, id uint) (dao.AdminApplication, error)
	FindAll(ctx context.Context, status string, skip, limit int) ([]dao.AdminApplication, error)
	FindByStaffID(ctx context.Context, staffID string) ([]dao.AdminApplication, error)
	HasPending(ctx context.Context, staffID string) (bool, error)
	UpdateReview(ctx context.Context, id uint, status, reviewerID, comment string) (dao.AdminApplication, error)
	ApproveAndCreateAdmin(ctx context.Context, id uint, reviewerID, comment string, admin dao.Administrator) (dao.AdminApplication, error)
}

type ApplicationRepository struct {
	dao ApplicationDAO
}

func NewApplicationRepository(d ApplicationDAO) *ApplicationRepository {
	return &ApplicationRepository{
		dao: d,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, app domain.AdminApplication) (domain.AdminApplication, error) {
	created, err := r.dao.Insert(ctx, applicationToDAO(app))
	if err != nil {
		return domain.AdminApplication{}, err
	}

	return applicationToDomain(created), nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uint) (domain.AdminApplication, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.AdminApplication{}, err
	}

	return applicationToDomain(found), nil
}

func (r *ApplicationRepository) FindAll(ctx context.Context, status string, skip, limit int) ([]domain.AdminApplication, error) {
	rows, err := r.dao.FindAll(ctx, status, skip, limit)
	if err != nil {
		return nil, err
	}

	return applicationsToDomain(rows), nil
}

func (r *ApplicationRepository) FindByStaffID(ctx context.Context, staffID string) ([]domain.AdminApplication, error) {
	rows, err := r.dao.FindByStaffID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	return applicationsToDomain(rows), nil
}

func (r *ApplicationRepository) HasPending(ctx context.Context, staffID string) (bool, error) {
	return r.dao.HasPending(ctx, staffID)
}

func (r *ApplicationRepository) Reject(ctx context.Context, id uint, reviewerID, comment string) (domain.AdminApplication, error) {
	updated, err := r.dao.UpdateReview(ctx, id, domain.ApplicationRejected, reviewerID, comment)
	if err != nil {
		return domain.AdminApplication{}, err
	}

	return applicationToDomain(updated), nil
}

func (r *ApplicationRepository) Approve(ctx context.Context, id uint, reviewerID, comment string, admin domain.Administrator) (domain.AdminApplication, error) {
	updated, err := r.dao.ApproveAndCreateAdmin(ctx, id, reviewerID, comment, adminToDAO(admin))
	if err != nil {
		return domain.AdminApplication{}, err
	}

	return applicationToDomain(updated), nil
}

func applicationsToDomain(rows []dao.AdminApplication) []domain.AdminApplication {
	apps := make([]domain.AdminApplication, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, applicationToDomain(row))
	}

	return apps
}

func applicationToDAO(a domain.AdminApplication) dao.AdminApplication {
	return dao.AdminApplication{
		ID:            a.ID,
		StaffID:       a.StaffID,
		Username:      a.Username,
		AdminType:     a.AdminType,
		CollegeID:     a.CollegeID,
		CollegeName:   a.CollegeName,
		Reason:        a.Reason,
		Status:        a.Status,
		ReviewerID:    a.ReviewerID,
		ReviewComment: a.ReviewComment,
	}
}

func applicationToDomain(a dao.AdminApplication) domain.AdminApplication {
	return domain.AdminApplication{
		ID:            a.ID,
		StaffID:       a.StaffID,
		Username:      a.Username,
		AdminType:     a.AdminType,
		CollegeID:     a.CollegeID,
		CollegeName:   a.CollegeName,
		Reason:        a.Reason,
		Status:        a.Status,
		ReviewerID:    a.ReviewerID,
		ReviewComment: a.ReviewComment,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
