package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CandidateRequest struct {
	Name        string `json:"name"`
	CollegeID   string `json:"college_id"`
	CollegeName string `json:"college_name"`
	Photo       string `json:"photo"`
	Bio         string `json:"bio"`
	Quote       string `json:"quote"`
	Review      string `json:"review"`
	VideoURL    string `json:"video_url"`
}

func (req *CandidateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.CollegeID, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.CollegeName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Photo, validation.Length(0, 200)),
		validation.Field(&req.Bio, validation.Length(0, 500)),
		validation.Field(&req.Quote, validation.Length(0, 200)),
		validation.Field(&req.Review, validation.Length(0, 500)),
		validation.Field(&req.VideoURL, validation.Length(0, 200)),
	)
}
