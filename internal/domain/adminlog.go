package domain

import "time"

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionView   = "view"
	ActionExport = "export"
	ActionOther  = "other"
)

type AdminLog struct {
	ID           uint      `json:"id"`
	AdminID      string    `json:"admin_id"`
	AdminName    string    `json:"admin_name"`
	AdminType    string    `json:"admin_type"`
	ActionType   string    `json:"action_type"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Description  string    `json:"description"`
	IPAddress    string    `json:"ip_address,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminLogFilter narrows a log listing. Zero values mean no restriction.
type AdminLogFilter struct {
	AdminID      string
	ActionType   string
	ResourceType string
	StartDate    time.Time
	EndDate      time.Time
	Skip         int
	Limit        int
}
