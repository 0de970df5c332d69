package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AdminCreateRequest struct {
	StaffID     string `json:"staff_id"`
	Name        string `json:"name"`
	AdminType   string `json:"admin_type"`
	CollegeID   string `json:"college_id"`
	CollegeName string `json:"college_name"`
}

func (req *AdminCreateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StaffID, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.AdminType, validation.Required, validation.In("school", "college")),
		validation.Field(&req.CollegeID, validation.Length(0, 50)),
		validation.Field(&req.CollegeName, validation.Length(0, 100)),
	)
}

type AdminUpdateRequest struct {
	Name        string `json:"name"`
	AdminType   string `json:"admin_type"`
	CollegeID   string `json:"college_id"`
	CollegeName string `json:"college_name"`
}

func (req *AdminUpdateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.AdminType, validation.Required, validation.In("school", "college")),
		validation.Field(&req.CollegeID, validation.Length(0, 50)),
		validation.Field(&req.CollegeName, validation.Length(0, 100)),
	)
}
