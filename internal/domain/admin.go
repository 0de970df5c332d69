package domain

import "time"

const (
	AdminTypeSchool  = "school"
	AdminTypeCollege = "college"
)

type Administrator struct {
	ID          uint      `json:"id"`
	StaffID     string    `json:"staff_id"`
	Name        string    `json:"name"`
	AdminType   string    `json:"admin_type"`
	CollegeID   string    `json:"college_id,omitempty"`
	CollegeName string    `json:"college_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
