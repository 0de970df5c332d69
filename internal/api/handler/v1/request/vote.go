package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type BulkVoteRequest struct {
	ActivityID   uint   `json:"activity_id"`
	CandidateIDs []uint `json:"candidate_ids"`
}

func (req *BulkVoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required),
		validation.Field(&req.CandidateIDs, validation.Required, validation.Length(1, 0)),
	)
}
