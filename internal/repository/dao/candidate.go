package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrCandidateNameExists = errors.New("candidate name already exists")
)

type Candidate struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"size:50;uniqueIndex;not null"`
	CollegeID   string `gorm:"size:50;not null"`
	CollegeName string `gorm:"size:100;not null"`
	Photo       string `gorm:"size:200"`
	Bio         string `gorm:"size:500"`
	Quote       string `gorm:"size:200"`
	Review      string `gorm:"size:500"`
	VideoURL    string `gorm:"size:200"`

	CreatedAt time.Time `gorm:"not null"`
}

type CandidateDAO struct {
	db *gorm.DB
}

func NewCandidateDAO(db *gorm.DB) *CandidateDAO {
	return &CandidateDAO{
		db: db,
	}
}

func (d *CandidateDAO) Insert(ctx context.Context, candidate Candidate) (Candidate, error) {
	result := d.db.WithContext(ctx).Create(&candidate)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_candidates_name") {
			return Candidate{}, ErrCandidateNameExists
		}

		return Candidate{}, result.Error
	}

	return candidate, nil
}

func (d *CandidateDAO) FindByID(ctx context.Context, id uint) (Candidate, error) {
	var candidate Candidate

	result := d.db.WithContext(ctx).First(&candidate, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Candidate{}, ErrCandidateNotFound
		}

		return Candidate{}, result.Error
	}

	return candidate, nil
}

func (d *CandidateDAO) FindAll(ctx context.Context) ([]Candidate, error) {
	var candidates []Candidate

	result := d.db.WithContext(ctx).Order("id").Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	return candidates, nil
}

func (d *CandidateDAO) FindByIDs(ctx context.Context, ids []uint) ([]Candidate, error) {
	var candidates []Candidate

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	return candidates, nil
}

func (d *CandidateDAO) Update(ctx context.Context, candidate Candidate) (Candidate, error) {
	result := d.db.WithContext(ctx).
		Model(&Candidate{ID: candidate.ID}).
		Select("Name", "CollegeID", "CollegeName", "Photo", "Bio", "Quote", "Review", "VideoURL").
		Updates(candidate)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_candidates_name") {
			return Candidate{}, ErrCandidateNameExists
		}

		return Candidate{}, result.Error
	}

	return d.FindByID(ctx, candidate.ID)
}

// Delete removes the candidate's votes and activity associations first, then
// the candidate itself, all in one transaction.
func (d *CandidateDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("candidate_id = ?", id).Delete(&Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("candidate_id = ?", id).Delete(&ActivityCandidate{}).Error; err != nil {
			return err
		}

		return tx.Delete(&Candidate{}, id).Error
	})
}

func (d *CandidateDAO) CountVotes(ctx context.Context, candidateID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Vote{}).Where("candidate_id = ?", candidateID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
