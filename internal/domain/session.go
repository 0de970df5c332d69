package domain

const (
	RoleUndergraduate = "undergraduate"
	RoleGraduate      = "graduate"
	RolePhd           = "phd"
	RoleTeacher       = "teacher"
	RoleUnknown       = "unknown"
)

// Session is the cache-resident record behind a bearer token. It is never
// persisted to the relational store.
type Session struct {
	StaffID          string `json:"staff_id"`
	Username         string `json:"username"`
	AccessToken      string `json:"access_token"`
	Role             string `json:"role"`
	AdminType        string `json:"admin_type,omitempty"`
	AdminCollegeID   string `json:"admin_college_id,omitempty"`
	AdminCollegeName string `json:"admin_college_name,omitempty"`
}

// IsSchoolAdmin reports whether the session holder has school-wide authority.
func (s Session) IsSchoolAdmin() bool {
	return s.AdminType == AdminTypeSchool
}

// IsCollegeAdmin reports whether the session holder administers one college.
func (s Session) IsCollegeAdmin() bool {
	return s.AdminType == AdminTypeCollege
}
