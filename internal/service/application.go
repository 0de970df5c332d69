package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository"
)

var (
	ErrApplicationNotFound        = repository.ErrApplicationNotFound
	ErrApplicationPendingExists   = errors.New("a pending application already exists for this staff id")
	ErrApplicationAlreadyReviewed = errors.New("only pending applications can be reviewed")
	ErrInvalidReviewStatus        = errors.New("review status must be approved or rejected")
)

type ApplicationRepository interface {
	Create(ctx context.Context, app domain.AdminApplication) (domain.AdminApplication, error)
	FindByID(ctx context.Context, id uint) (domain.AdminApplication, error)
	FindAll(ctx context.Context, status string, skip, limit int) ([]domain.AdminApplication, error)
	FindByStaffID(ctx context.Context, staffID string) ([]domain.AdminApplication, error)
	HasPending(ctx context.Context, staffID string) (bool, error)
	Reject(ctx context.Context, id uint, reviewerID, comment string) (domain.AdminApplication, error)
	Approve(ctx context.Context, id uint, reviewerID, comment string, admin domain.Administrator) (domain.AdminApplication, error)
}

type ApplicationAdminRepository interface {
	FindByStaffID(ctx context.Context, staffID string) (domain.Administrator, error)
}

type ApplicationService struct {
	repo   ApplicationRepository
	admins ApplicationAdminRepository
}

func NewApplicationService(repo ApplicationRepository, admins ApplicationAdminRepository) *ApplicationService {
	return &ApplicationService{
		repo:   repo,
		admins: admins,
	}
}

// Apply files an admin application for the session holder. Applicant
// identity always comes from the session, never from the request body.
func (s *ApplicationService) Apply(ctx context.Context, session domain.Session, app domain.AdminApplication) (domain.AdminApplication, error) {
	admin := domain.Administrator{
		AdminType:   app.AdminType,
		CollegeID:   app.CollegeID,
		CollegeName: app.CollegeName,
	}
	if err := validateAdminFields(&admin); err != nil {
		return domain.AdminApplication{}, err
	}
	app.CollegeID = admin.CollegeID
	app.CollegeName = admin.CollegeName

	pending, err := s.repo.HasPending(ctx, session.StaffID)
	if err != nil {
		return domain.AdminApplication{}, fmt.Errorf("s.repo.HasPending -> %w", err)
	}
	if pending {
		return domain.AdminApplication{}, ErrApplicationPendingExists
	}

	app.StaffID = session.StaffID
	app.Username = session.Username
	app.Status = domain.ApplicationPending

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return domain.AdminApplication{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ApplicationService) GetAll(ctx context.Context, status string, skip, limit int) ([]domain.AdminApplication, error) {
	if limit <= 0 {
		limit = 100
	}

	apps, err := s.repo.FindAll(ctx, status, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return apps, nil
}

func (s *ApplicationService) GetMine(ctx context.Context, session domain.Session) ([]domain.AdminApplication, error) {
	apps, err := s.repo.FindByStaffID(ctx, session.StaffID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStaffID -> %w", err)
	}

	return apps, nil
}

// Review settles a pending application. Approval attempts to materialize an
// Administrator row; if one already exists for the staff id, the verdict
// flips to rejected with an explanatory comment instead of failing.
func (s *ApplicationService) Review(ctx context.Context, reviewer domain.Session, id uint, status, comment string) (domain.AdminApplication, error) {
	if status != domain.ApplicationApproved && status != domain.ApplicationRejected {
		return domain.AdminApplication{}, ErrInvalidReviewStatus
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return domain.AdminApplication{}, ErrApplicationNotFound
		}

		return domain.AdminApplication{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if app.Status != domain.ApplicationPending {
		return domain.AdminApplication{}, ErrApplicationAlreadyReviewed
	}

	if status == domain.ApplicationRejected {
		rejected, err := s.repo.Reject(ctx, id, reviewer.StaffID, comment)
		if err != nil {
			return domain.AdminApplication{}, fmt.Errorf("s.repo.Reject -> %w", err)
		}

		return rejected, nil
	}

	// Fast path: a known existing administrator turns the approval into a
	// rejection up front. The transactional Approve call handles the race
	// where the row appears between this check and the insert.
	if _, err = s.admins.FindByStaffID(ctx, app.StaffID); err == nil {
		rejected, err := s.repo.Reject(ctx, id, reviewer.StaffID, "administrator already exists for this staff id")
		if err != nil {
			return domain.AdminApplication{}, fmt.Errorf("s.repo.Reject -> %w", err)
		}

		return rejected, nil
	} else if !errors.Is(err, repository.ErrAdminNotFound) {
		return domain.AdminApplication{}, fmt.Errorf("s.admins.FindByStaffID -> %w", err)
	}

	approved, err := s.repo.Approve(ctx, id, reviewer.StaffID, comment, domain.Administrator{
		StaffID:     app.StaffID,
		Name:        app.Username,
		AdminType:   app.AdminType,
		CollegeID:   app.CollegeID,
		CollegeName: app.CollegeName,
	})
	if err != nil {
		return domain.AdminApplication{}, fmt.Errorf("s.repo.Approve -> %w", err)
	}

	zap.L().Info("admin application reviewed",
		zap.Uint("application_id", id),
		zap.String("verdict", approved.Status),
		zap.String("reviewer_id", reviewer.StaffID),
	)

	return approved, nil
}
