package domain

import "time"

type Activity struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsActive    bool      `json:"is_active"`
	MinVotes    int       `json:"min_votes"`
	MaxVotes    int       `json:"max_votes"`
	// CandidateIDs is the ordered slate associated with the activity.
	CandidateIDs []uint    `json:"candidate_ids"`
	CreatedAt    time.Time `json:"created_at"`
}
