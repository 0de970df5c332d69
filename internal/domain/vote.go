package domain

import "time"

type Vote struct {
	ID          uint      `json:"id"`
	CandidateID uint      `json:"candidate_id"`
	ActivityID  uint      `json:"activity_id"`
	VoterID     string    `json:"voter_id"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// BulkVoteError reports why one candidate in a batch submission was refused.
type BulkVoteError struct {
	CandidateID uint   `json:"candidate_id"`
	Detail      string `json:"detail"`
}

// BulkVoteResult is the response shape of a batch submission. Errors being
// non-empty implies SuccessCount == 0: the batch is all-or-nothing and any
// item failure rolls the whole transaction back.
type BulkVoteResult struct {
	SuccessCount int             `json:"success_count"`
	Errors       []BulkVoteError `json:"errors"`
}

// CandidateResult is one row of an activity's tally.
type CandidateResult struct {
	CandidateID   uint   `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	VoteCount     int64  `json:"vote_count"`
}
