package repository

import (
	"context"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository/dao"
)

type AdminLogDAO interface {
	Insert(ctx context.Context, log dao.AdminLog) (dao.AdminLog, error)
	Find(ctx context.Context, filter dao.AdminLogFilter) ([]dao.AdminLog, error)
}

type AdminLogRepository struct {
	dao AdminLogDAO
}

func NewAdminLogRepository(d AdminLogDAO) *AdminLogRepository {
	return &AdminLogRepository{
		dao: d,
	}
}

func (r *AdminLogRepository) Create(ctx context.Context, log domain.AdminLog) (domain.AdminLog, error) {
	created, err := r.dao.Insert(ctx, dao.AdminLog{
		AdminID:      log.AdminID,
		AdminName:    log.AdminName,
		AdminType:    log.AdminType,
		ActionType:   log.ActionType,
		ResourceType: log.ResourceType,
		ResourceID:   log.ResourceID,
		Description:  log.Description,
		IPAddress:    log.IPAddress,
		UserAgent:    log.UserAgent,
	})
	if err != nil {
		return domain.AdminLog{}, err
	}

	return adminLogToDomain(created), nil
}

func (r *AdminLogRepository) Find(ctx context.Context, filter domain.AdminLogFilter) ([]domain.AdminLog, error) {
	rows, err := r.dao.Find(ctx, dao.AdminLogFilter{
		AdminID:      filter.AdminID,
		ActionType:   filter.ActionType,
		ResourceType: filter.ResourceType,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
		Skip:         filter.Skip,
		Limit:        filter.Limit,
	})
	if err != nil {
		return nil, err
	}

	logs := make([]domain.AdminLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, adminLogToDomain(row))
	}

	return logs, nil
}

func adminLogToDomain(l dao.AdminLog) domain.AdminLog {
	return domain.AdminLog{
		ID:           l.ID,
		AdminID:      l.AdminID,
		AdminName:    l.AdminName,
		AdminType:    l.AdminType,
		ActionType:   l.ActionType,
		ResourceType: l.ResourceType,
		ResourceID:   l.ResourceID,
		Description:  l.Description,
		IPAddress:    l.IPAddress,
		UserAgent:    l.UserAgent,
		CreatedAt:    l.CreatedAt,
	}
}
