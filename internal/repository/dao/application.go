package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("admin application not found")

type AdminApplication struct {
	ID uint `gorm:"primaryKey"`

	StaffID     string `gorm:"size:50;not null;index"`
	Username    string `gorm:"size:50;not null"`
	AdminType   string `gorm:"size:10;not null"`
	CollegeID   string `gorm:"size:50"`
	CollegeName string `gorm:"size:100"`
	Reason      string `gorm:"size:500;not null"`

	Status        string `gorm:"size:10;not null;default:pending"`
	ReviewerID    string `gorm:"size:50"`
	ReviewComment string `gorm:"size:500"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ApplicationDAO struct {
	db *gorm.DB
}

func NewApplicationDAO(db *gorm.DB) *ApplicationDAO {
	return &ApplicationDAO{
		db: db,
	}
}

func (d *ApplicationDAO) Insert(ctx context.Context, app AdminApplication) (AdminApplication, error) {
	result := d.db.WithContext(ctx).Create(&app)
	if result.Error != nil {
		return AdminApplication{}, result.Error
	}

	return app, nil
}

func (d *ApplicationDAO) FindByID(ctx context.Context, id uint) (AdminApplication, error) {
	var app AdminApplication

	result := d.db.WithContext(ctx).First(&app, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AdminApplication{}, ErrApplicationNotFound
		}

		return AdminApplication{}, result.Error
	}

	return app, nil
}

func (d *ApplicationDAO) FindAll(ctx context.Context, status string, skip, limit int) ([]AdminApplication, error) {
	var apps []AdminApplication

	query := d.db.WithContext(ctx).Order("created_at DESC").Offset(skip).Limit(limit)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	result := query.Find(&apps)
	if result.Error != nil {
		return nil, result.Error
	}

	return apps, nil
}

func (d *ApplicationDAO) FindByStaffID(ctx context.Context, staffID string) ([]AdminApplication, error) {
	var apps []AdminApplication

	result := d.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&apps)
	if result.Error != nil {
		return nil, result.Error
	}

	return apps, nil
}

func (d *ApplicationDAO) HasPending(ctx context.Context, staffID string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&AdminApplication{}).
		Where("staff_id = ? AND status = ?", staffID, "pending").
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// UpdateReview records a review verdict without side effects.
func (d *ApplicationDAO) UpdateReview(ctx context.Context, id uint, status, reviewerID, comment string) (AdminApplication, error) {
	result := d.db.WithContext(ctx).
		Model(&AdminApplication{ID: id}).
		Updates(map[string]any{
			"status":         status,
			"reviewer_id":    reviewerID,
			"review_comment": comment,
		})
	if result.Error != nil {
		return AdminApplication{}, result.Error
	}

	return d.FindByID(ctx, id)
}

// ApproveAndCreateAdmin marks the application approved and materializes the
// Administrator row in one transaction. If the admin insert loses a race to
// a concurrent creation for the same staff id, the approval flips to
// rejected with an explanatory comment instead of failing.
func (d *ApplicationDAO) ApproveAndCreateAdmin(ctx context.Context, id uint, reviewerID, comment string, admin Administrator) (AdminApplication, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&AdminApplication{ID: id}).
			Updates(map[string]any{
				"status":         "approved",
				"reviewer_id":    reviewerID,
				"review_comment": comment,
			})
		if update.Error != nil {
			return update.Error
		}

		// Postgres aborts the transaction after a constraint failure, so the
		// insert runs under a savepoint to keep the rejected-flip writable.
		tx.SavePoint("before_admin")
		if err := tx.Create(&admin).Error; err != nil {
			if !isUniqueViolation(err, "idx_administrators_staff_id") {
				return err
			}
			tx.RollbackTo("before_admin")

			return tx.Model(&AdminApplication{ID: id}).
				Updates(map[string]any{
					"status":         "rejected",
					"reviewer_id":    reviewerID,
					"review_comment": "administrator already exists for this staff id",
				}).Error
		}

		return nil
	})
	if err != nil {
		return AdminApplication{}, err
	}

	return d.FindByID(ctx, id)
}
