package domain

import "time"

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

type AdminApplication struct {
	ID            uint      `json:"id"`
	StaffID       string    `json:"staff_id"`
	Username      string    `json:"username"`
	AdminType     string    `json:"admin_type"`
	CollegeID     string    `json:"college_id,omitempty"`
	CollegeName   string    `json:"college_name,omitempty"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	ReviewerID    string    `json:"reviewer_id,omitempty"`
	ReviewComment string    `json:"review_comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
