package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrAdminNotFound      = errors.New("administrator not found")
	ErrAdminStaffIDExists = errors.New("administrator staff id already exists")
)

type Administrator struct {
	ID uint `gorm:"primaryKey"`

	StaffID     string `gorm:"size:50;uniqueIndex;not null"`
	Name        string `gorm:"size:50;not null"`
	AdminType   string `gorm:"size:10;not null"`
	CollegeID   string `gorm:"size:50"`
	CollegeName string `gorm:"size:100"`

	CreatedAt time.Time `gorm:"not null"`
}

type AdminDAO struct {
	db *gorm.DB
}

func NewAdminDAO(db *gorm.DB) *AdminDAO {
	return &AdminDAO{
		db: db,
	}
}

func (d *AdminDAO) Insert(ctx context.Context, admin Administrator) (Administrator, error) {
	result := d.db.WithContext(ctx).Create(&admin)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_administrators_staff_id") {
			return Administrator{}, ErrAdminStaffIDExists
		}

		return Administrator{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindByStaffID(ctx context.Context, staffID string) (Administrator, error) {
	var admin Administrator

	result := d.db.WithContext(ctx).First(&admin, "staff_id = ?", staffID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Administrator{}, ErrAdminNotFound
		}

		return Administrator{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindAll(ctx context.Context, skip, limit int) ([]Administrator, error) {
	var admins []Administrator

	result := d.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&admins)
	if result.Error != nil {
		return nil, result.Error
	}

	return admins, nil
}

func (d *AdminDAO) Update(ctx context.Context, admin Administrator) (Administrator, error) {
	result := d.db.WithContext(ctx).
		Model(&Administrator{}).
		Where("staff_id = ?", admin.StaffID).
		Select("Name", "AdminType", "CollegeID", "CollegeName").
		Updates(admin)
	if result.Error != nil {
		return Administrator{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Administrator{}, ErrAdminNotFound
	}

	return d.FindByStaffID(ctx, admin.StaffID)
}

func (d *AdminDAO) Delete(ctx context.Context, staffID string) error {
	result := d.db.WithContext(ctx).Where("staff_id = ?", staffID).Delete(&Administrator{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}

	return nil
}
