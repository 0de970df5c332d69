package response

import "github.com/digitpainter/vote-v4/internal/domain"

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	StaffID     string `json:"staff_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	AdminType   string `json:"admin_type,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LogoutResponse struct {
	Message   string `json:"message"`
	LogoutURL string `json:"logout_url"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type ActivityResultsResponse struct {
	ActivityID uint                     `json:"activity_id"`
	Results    []domain.CandidateResult `json:"results"`
}
