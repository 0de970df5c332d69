package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type AdminLog struct {
	ID uint `gorm:"primaryKey"`

	AdminID      string `gorm:"size:50;not null;index"`
	AdminName    string `gorm:"size:50;not null"`
	AdminType    string `gorm:"size:10;not null"`
	ActionType   string `gorm:"size:10;not null;index"`
	ResourceType string `gorm:"size:50;not null;index"`
	ResourceID   string `gorm:"size:50"`
	Description  string `gorm:"size:500"`
	IPAddress    string `gorm:"size:50"`
	UserAgent    string `gorm:"size:200"`

	CreatedAt time.Time `gorm:"not null;index"`
}

// AdminLogFilter narrows a Find to matching rows. Zero-value fields
// are ignored.
type AdminLogFilter struct {
	AdminID      string
	ActionType   string
	ResourceType string
	StartDate    time.Time
	EndDate      time.Time
	Skip         int
	Limit        int
}

type AdminLogDAO struct {
	db *gorm.DB
}

func NewAdminLogDAO(db *gorm.DB) *AdminLogDAO {
	return &AdminLogDAO{
		db: db,
	}
}

func (d *AdminLogDAO) Insert(ctx context.Context, log AdminLog) (AdminLog, error) {
	result := d.db.WithContext(ctx).Create(&log)
	if result.Error != nil {
		return AdminLog{}, result.Error
	}

	return log, nil
}

func (d *AdminLogDAO) Find(ctx context.Context, filter AdminLogFilter) ([]AdminLog, error) {
	query := d.db.WithContext(ctx).Model(&AdminLog{})

	if filter.AdminID != "" {
		query = query.Where("admin_id = ?", filter.AdminID)
	}
	if filter.ActionType != "" {
		query = query.Where("action_type = ?", filter.ActionType)
	}
	if filter.ResourceType != "" {
		query = query.Where("resource_type = ?", filter.ResourceType)
	}
	if !filter.StartDate.IsZero() {
		query = query.Where("created_at >= ?", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query = query.Where("created_at <= ?", filter.EndDate)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var logs []AdminLog
	result := query.Order("created_at DESC").Offset(filter.Skip).Limit(limit).Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}

	return logs, nil
}
