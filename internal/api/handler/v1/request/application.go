package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ApplicationCreateRequest struct {
	AdminType   string `json:"admin_type"`
	CollegeID   string `json:"college_id"`
	CollegeName string `json:"college_name"`
	Reason      string `json:"reason"`
}

func (req *ApplicationCreateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AdminType, validation.Required, validation.In("school", "college")),
		validation.Field(&req.CollegeID, validation.Length(0, 50)),
		validation.Field(&req.CollegeName, validation.Length(0, 100)),
		validation.Field(&req.Reason, validation.Required, validation.Length(1, 500)),
	)
}

type ApplicationReviewRequest struct {
	Status        string `json:"status"`
	ReviewComment string `json:"review_comment"`
}

func (req *ApplicationReviewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In("approved", "rejected")),
		validation.Field(&req.ReviewComment, validation.Length(0, 500)),
	)
}
