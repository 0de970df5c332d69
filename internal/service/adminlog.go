package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/digitpainter/vote-v4/internal/domain"
)

type AdminLogRepository interface {
	Create(ctx context.Context, log domain.AdminLog) (domain.AdminLog, error)
	Find(ctx context.Context, filter domain.AdminLogFilter) ([]domain.AdminLog, error)
}

// RequestMeta carries request attribution for the audit trail without
// coupling the service layer to the HTTP framework.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type AdminLogService struct {
	repo AdminLogRepository
}

func NewAdminLogService(repo AdminLogRepository) *AdminLogService {
	return &AdminLogService{
		repo: repo,
	}
}

// Record appends an immutable audit entry. Failures are logged, not
// returned: a broken audit sink must not fail the admin action itself.
func (s *AdminLogService) Record(ctx context.Context, session domain.Session, meta RequestMeta, actionType, resourceType, resourceID, description string) {
	adminType := session.AdminType
	if adminType == "" {
		adminType = "none"
	}

	_, err := s.repo.Create(ctx, domain.AdminLog{
		AdminID:      session.StaffID,
		AdminName:    session.Username,
		AdminType:    adminType,
		ActionType:   actionType,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Description:  description,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
	})
	if err != nil {
		zap.L().Error("failed to record admin action",
			zap.String("admin_id", session.StaffID),
			zap.String("action_type", actionType),
			zap.String("resource_type", resourceType),
			zap.Error(err),
		)
	}
}

func (s *AdminLogService) GetAll(ctx context.Context, filter domain.AdminLogFilter) ([]domain.AdminLog, error) {
	logs, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return logs, nil
}
