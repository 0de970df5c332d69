package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrDuplicateVote = errors.New("vote already cast for this candidate")

type Vote struct {
	ID uint `gorm:"primaryKey"`

	ActivityID  uint   `gorm:"not null;uniqueIndex:uq_vote_record,priority:1"`
	CandidateID uint   `gorm:"not null;uniqueIndex:uq_vote_record,priority:2"`
	VoterID     string `gorm:"size:50;not null;index;uniqueIndex:uq_vote_record,priority:3"`
	Source      string `gorm:"size:50;not null;default:web"`

	CreatedAt time.Time `gorm:"not null"`
}

// VoteInsertError reports a single refused row of a batch insert.
type VoteInsertError struct {
	CandidateID uint
	Err         error
}

type VoteDAO struct {
	db *gorm.DB
}

func NewVoteDAO(db *gorm.DB) *VoteDAO {
	return &VoteDAO{
		db: db,
	}
}

// errBatchRollback aborts the surrounding transaction once item errors have
// been collected; it never escapes InsertBatch.
var errBatchRollback = errors.New("vote batch rolled back")

// InsertBatch inserts every vote inside one transaction. Row-level failures
// are collected instead of aborting the loop, but any failure rolls the
// whole batch back: either all votes persist or none do. The uniqueness
// constraint on (activity, candidate, voter) is the authoritative duplicate
// signal and is reported as ErrDuplicateVote.
func (d *VoteDAO) InsertBatch(ctx context.Context, votes []Vote) ([]VoteInsertError, error) {
	var itemErrs []VoteInsertError

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, vote := range votes {
			vote := vote
			// A savepoint per row keeps the transaction usable after a
			// constraint failure, so every row gets an accurate verdict.
			tx.SavePoint("before_vote")
			if err := tx.Create(&vote).Error; err != nil {
				tx.RollbackTo("before_vote")
				if isUniqueViolation(err, "uq_vote_record") {
					itemErrs = append(itemErrs, VoteInsertError{
						CandidateID: vote.CandidateID,
						Err:         ErrDuplicateVote,
					})

					continue
				}

				itemErrs = append(itemErrs, VoteInsertError{
					CandidateID: vote.CandidateID,
					Err:         err,
				})
			}
		}

		if len(itemErrs) > 0 {
			return errBatchRollback
		}

		return nil
	})
	if err != nil && !errors.Is(err, errBatchRollback) {
		return nil, err
	}

	return itemErrs, nil
}

func (d *VoteDAO) HasVoted(ctx context.Context, activityID uint, voterID string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Vote{}).
		Where("activity_id = ? AND voter_id = ?", activityID, voterID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *VoteDAO) FindByVoter(ctx context.Context, voterID string) ([]Vote, error) {
	var votes []Vote

	result := d.db.WithContext(ctx).
		Where("voter_id = ?", voterID).
		Order("created_at").
		Find(&votes)
	if result.Error != nil {
		return nil, result.Error
	}

	return votes, nil
}

func (d *VoteDAO) CountByActivityAndVoter(ctx context.Context, activityID uint, voterID string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Vote{}).
		Where("activity_id = ? AND voter_id = ?", activityID, voterID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

type TallyRow struct {
	CandidateID   uint
	CandidateName string
	VoteCount     int64
}

// TallyByActivity counts votes per candidate on the activity's slate,
// including candidates with zero votes, ordered by slate position.
func (d *VoteDAO) TallyByActivity(ctx context.Context, activityID uint) ([]TallyRow, error) {
	var rows []TallyRow

	result := d.db.WithContext(ctx).
		Table("activity_candidate_association AS aca").
		Select("aca.candidate_id AS candidate_id, c.name AS candidate_name, COUNT(v.id) AS vote_count").
		Joins("JOIN candidates c ON c.id = aca.candidate_id").
		Joins("LEFT JOIN votes v ON v.candidate_id = aca.candidate_id AND v.activity_id = aca.activity_id").
		Where("aca.activity_id = ?", activityID).
		Group("aca.candidate_id, c.name, aca.position").
		Order("aca.position").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
