package repository

import (
	"context"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository/dao"
)

var (
	ErrAdminNotFound      = dao.ErrAdminNotFound
	ErrAdminStaffIDExists = dao.ErrAdminStaffIDExists
)

type AdminDAO interface {
	Insert(ctx context.Context, admin dao.Administrator) (dao.Administrator, error)
	FindByStaffID(ctx context.Context, staffID string) (dao.Administrator, error)
	FindAll(ctx context.Context, skip, limit int) ([]dao.Administrator, error)
	Update(ctx context.Context, admin dao.Administrator) (dao.Administrator, error)
	Delete(ctx context.Context, staffID string) error
}

type AdminRepository struct {
	dao AdminDAO
}

func NewAdminRepository(d AdminDAO) *AdminRepository {
	return &AdminRepository{
		dao: d,
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin domain.Administrator) (domain.Administrator, error) {
	created, err := r.dao.Insert(ctx, adminToDAO(admin))
	if err != nil {
		return domain.Administrator{}, err
	}

	return adminToDomain(created), nil
}

func (r *AdminRepository) FindByStaffID(ctx context.Context, staffID string) (domain.Administrator, error) {
	found, err := r.dao.FindByStaffID(ctx, staffID)
	if err != nil {
		return domain.Administrator{}, err
	}

	return adminToDomain(found), nil
}

func (r *AdminRepository) FindAll(ctx context.Context, skip, limit int) ([]domain.Administrator, error) {
	rows, err := r.dao.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	admins := make([]domain.Administrator, 0, len(rows))
	for _, row := range rows {
		admins = append(admins, adminToDomain(row))
	}

	return admins, nil
}

func (r *AdminRepository) Update(ctx context.Context, admin domain.Administrator) (domain.Administrator, error) {
	updated, err := r.dao.Update(ctx, adminToDAO(admin))
	if err != nil {
		return domain.Administrator{}, err
	}

	return adminToDomain(updated), nil
}

func (r *AdminRepository) Delete(ctx context.Context, staffID string) error {
	return r.dao.Delete(ctx, staffID)
}

func adminToDAO(a domain.Administrator) dao.Administrator {
	return dao.Administrator{
		ID:          a.ID,
		StaffID:     a.StaffID,
		Name:        a.Name,
		AdminType:   a.AdminType,
		CollegeID:   a.CollegeID,
		CollegeName: a.CollegeName,
	}
}

func adminToDomain(a dao.Administrator) domain.Administrator {
	return domain.Administrator{
		ID:          a.ID,
		StaffID:     a.StaffID,
		Name:        a.Name,
		AdminType:   a.AdminType,
		CollegeID:   a.CollegeID,
		CollegeName: a.CollegeName,
		CreatedAt:   a.CreatedAt,
	}
}
