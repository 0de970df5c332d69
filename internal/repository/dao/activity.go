package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrActivityNotFound = errors.New("activity not found")

type Activity struct {
	ID uint `gorm:"primaryKey"`

	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"size:500"`
	StartTime   time.Time `gorm:"not null"`
	EndTime     time.Time `gorm:"not null"`
	IsActive    bool      `gorm:"not null;default:false"`
	MinVotes    int       `gorm:"not null;default:1"`
	MaxVotes    int       `gorm:"not null;default:1"`

	CreatedAt time.Time `gorm:"not null"`
}

func (Activity) TableName() string {
	return "vote_activities"
}

type ActivityCandidate struct {
	ActivityID  uint `gorm:"primaryKey;autoIncrement:false"`
	CandidateID uint `gorm:"primaryKey;autoIncrement:false"`
	Position    int  `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

func (ActivityCandidate) TableName() string {
	return "activity_candidate_association"
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

// Insert creates the activity and its candidate slate in one transaction.
// Association positions follow the order of candidateIDs.
func (d *ActivityDAO) Insert(ctx context.Context, activity Activity, candidateIDs []uint) (Activity, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}

		return insertAssociations(tx, activity.ID, candidateIDs)
	})
	if err != nil {
		return Activity{}, err
	}

	return activity, nil
}

func (d *ActivityDAO) FindByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := d.db.WithContext(ctx).First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) FindAll(ctx context.Context) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).Order("id").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *ActivityDAO) FindActive(ctx context.Context) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).Where("is_active = ?", true).Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

// Update rewrites the activity fields and fully replaces the candidate slate.
func (d *ActivityDAO) Update(ctx context.Context, activity Activity, candidateIDs []uint) (Activity, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Activity{ID: activity.ID}).
			Select("Title", "Description", "StartTime", "EndTime", "MinVotes", "MaxVotes").
			Updates(activity)
		if result.Error != nil {
			return result.Error
		}

		if err := tx.Where("activity_id = ?", activity.ID).Delete(&ActivityCandidate{}).Error; err != nil {
			return err
		}

		return insertAssociations(tx, activity.ID, candidateIDs)
	})
	if err != nil {
		return Activity{}, err
	}

	return d.FindByID(ctx, activity.ID)
}

// Delete removes votes, then associations, then the activity, in one transaction.
func (d *ActivityDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", id).Delete(&Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_id = ?", id).Delete(&ActivityCandidate{}).Error; err != nil {
			return err
		}

		return tx.Delete(&Activity{}, id).Error
	})
}

// SetActive enforces exclusive activation: turning an activity on deactivates
// every other active activity in the same transaction.
func (d *ActivityDAO) SetActive(ctx context.Context, id uint, active bool) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if active {
			result := tx.Model(&Activity{}).
				Where("is_active = ? AND id <> ?", true, id).
				Update("is_active", false)
			if result.Error != nil {
				return result.Error
			}
		}

		return tx.Model(&Activity{ID: id}).Update("is_active", active).Error
	})
}

// AssociatedCandidateIDs returns the slate for an activity ordered by position.
func (d *ActivityDAO) AssociatedCandidateIDs(ctx context.Context, activityID uint) ([]uint, error) {
	var ids []uint

	result := d.db.WithContext(ctx).
		Model(&ActivityCandidate{}).
		Where("activity_id = ?", activityID).
		Order("position").
		Pluck("candidate_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

func insertAssociations(tx *gorm.DB, activityID uint, candidateIDs []uint) error {
	for i, candidateID := range candidateIDs {
		assoc := ActivityCandidate{
			ActivityID:  activityID,
			CandidateID: candidateID,
			Position:    i,
		}
		if err := tx.Create(&assoc).Error; err != nil {
			return err
		}
	}

	return nil
}
