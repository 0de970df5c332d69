package domain

import "time"

type Candidate struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	CollegeID   string    `json:"college_id"`
	CollegeName string    `json:"college_name"`
	Photo       string    `json:"photo"`
	Bio         string    `json:"bio"`
	Quote       string    `json:"quote,omitempty"`
	Review      string    `json:"review,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	VoteCount   int64     `json:"vote_count"`
	CreatedAt   time.Time `json:"created_at"`
}
