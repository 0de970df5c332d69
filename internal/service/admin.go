package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository"
)

var (
	ErrAdminNotFound         = repository.ErrAdminNotFound
	ErrAdminStaffIDExists    = repository.ErrAdminStaffIDExists
	ErrCollegeFieldsRequired = errors.New("college_id and college_name are required for college administrators")
	ErrInvalidAdminType      = errors.New("admin_type must be school or college")
)

type AdminRepository interface {
	Create(ctx context.Context, admin domain.Administrator) (domain.Administrator, error)
	FindByStaffID(ctx context.Context, staffID string) (domain.Administrator, error)
	FindAll(ctx context.Context, skip, limit int) ([]domain.Administrator, error)
	Update(ctx context.Context, admin domain.Administrator) (domain.Administrator, error)
	Delete(ctx context.Context, staffID string) error
}

type AdminService struct {
	repo AdminRepository
}

func NewAdminService(repo AdminRepository) *AdminService {
	return &AdminService{
		repo: repo,
	}
}

func (s *AdminService) Create(ctx context.Context, admin domain.Administrator) (domain.Administrator, error) {
	if err := validateAdminFields(&admin); err != nil {
		return domain.Administrator{}, err
	}

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, repository.ErrAdminStaffIDExists) {
			return domain.Administrator{}, ErrAdminStaffIDExists
		}

		return domain.Administrator{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AdminService) GetByStaffID(ctx context.Context, staffID string) (domain.Administrator, error) {
	admin, err := s.repo.FindByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.Administrator{}, ErrAdminNotFound
		}

		return domain.Administrator{}, fmt.Errorf("s.repo.FindByStaffID -> %w", err)
	}

	return admin, nil
}

func (s *AdminService) GetAll(ctx context.Context, skip, limit int) ([]domain.Administrator, error) {
	if limit <= 0 {
		limit = 100
	}

	admins, err := s.repo.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return admins, nil
}

func (s *AdminService) Update(ctx context.Context, admin domain.Administrator) (domain.Administrator, error) {
	if err := validateAdminFields(&admin); err != nil {
		return domain.Administrator{}, err
	}

	updated, err := s.repo.Update(ctx, admin)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.Administrator{}, ErrAdminNotFound
		}

		return domain.Administrator{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AdminService) Delete(ctx context.Context, staffID string) error {
	if err := s.repo.Delete(ctx, staffID); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return ErrAdminNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func validateAdminFields(admin *domain.Administrator) error {
	switch admin.AdminType {
	case domain.AdminTypeSchool:
		// School-wide admins carry no college scope.
		admin.CollegeID = ""
		admin.CollegeName = ""
	case domain.AdminTypeCollege:
		if admin.CollegeID == "" || admin.CollegeName == "" {
			return ErrCollegeFieldsRequired
		}
	default:
		return ErrInvalidAdminType
	}

	return nil
}
