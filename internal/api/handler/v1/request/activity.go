package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type ActivityRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	MinVotes     int       `json:"min_votes"`
	MaxVotes     int       `json:"max_votes"`
	CandidateIDs []uint    `json:"candidate_ids"`
}

func (req *ActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.StartTime, validation.Required),
		validation.Field(&req.EndTime, validation.Required),
		validation.Field(&req.MinVotes, validation.Required, validation.Min(1)),
		validation.Field(&req.MaxVotes, validation.Required, validation.Min(1)),
	)
}
