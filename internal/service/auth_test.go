package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/pkg/cas"
	"github.com/digitpainter/vote-v4/internal/repository"
	"github.com/digitpainter/vote-v4/internal/repository/dao"
	"github.com/digitpainter/vote-v4/internal/service"
)

func TestDeriveRole(t *testing.T) {
	tests := []struct {
		name string
		uid  string
		want string
	}{
		{"nine digits is undergraduate", "162050121", domain.RoleUndergraduate},
		{"S prefix is graduate", "S12345678", domain.RoleGraduate},
		{"B prefix is phd", "B12345678", domain.RolePhd},
		{"seven digits is teacher", "1234567", domain.RoleTeacher},
		{"eight digits is teacher", "12345678", domain.RoleTeacher},
		{"six digits is unknown", "123456", domain.RoleUnknown},
		{"ten digits is unknown", "1234567890", domain.RoleUnknown},
		{"S prefix with wrong length is unknown", "S1234567", domain.RoleUnknown},
		{"lowercase s is unknown", "s12345678", domain.RoleUnknown},
		{"empty is unknown", "", domain.RoleUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := service.DeriveRole(tt.uid)

			assert.Equal(t, tt.want, got)
		})
	}
}

type stubValidator struct {
	info cas.UserInfo
	err  error
}

func (v *stubValidator) ValidateTicket(_ context.Context, _ string) (cas.UserInfo, error) {
	return v.info, v.err
}

func (v *stubValidator) LoginURL() string {
	return "https://sso.example.com/login?service=callback"
}

func (v *stubValidator) LogoutURL() string {
	return "https://sso.example.com/logout?service=callback"
}

func TestAuthServiceLogin(t *testing.T) {
	db := newTestDB(t)
	admins := repository.NewAdminRepository(dao.NewAdminDAO(db))
	sessions, _ := newTestSessionStore(t, time.Hour)

	validator := &stubValidator{
		info: cas.UserInfo{ID: "42", UID: "162050121", UserName: "Alice"},
	}
	svc := service.NewAuthService(validator, admins, sessions)

	session, err := svc.Login(context.Background(), "ST-abc")
	require.NoError(t, err)

	assert.Equal(t, "162050121", session.StaffID)
	assert.Equal(t, "Alice", session.Username)
	assert.Equal(t, domain.RoleUndergraduate, session.Role)
	assert.Empty(t, session.AdminType)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEqual(t, "session_162050121", session.AccessToken)

	stored, err := svc.CurrentSession(context.Background(), session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session, stored)

	// Two logins never share a token.
	second, err := svc.Login(context.Background(), "ST-def")
	require.NoError(t, err)
	assert.NotEqual(t, session.AccessToken, second.AccessToken)
}

func TestAuthServiceLogin_AttachesAdminScope(t *testing.T) {
	db := newTestDB(t)
	admins := repository.NewAdminRepository(dao.NewAdminDAO(db))
	sessions, _ := newTestSessionStore(t, time.Hour)

	_, err := admins.Create(context.Background(), domain.Administrator{
		StaffID:     "1234567",
		Name:        "Prof. Li",
		AdminType:   domain.AdminTypeCollege,
		CollegeID:   "101",
		CollegeName: "School of Computer Science",
	})
	require.NoError(t, err)

	validator := &stubValidator{
		info: cas.UserInfo{ID: "7", UID: "1234567", UserName: "Prof. Li"},
	}
	svc := service.NewAuthService(validator, admins, sessions)

	session, err := svc.Login(context.Background(), "ST-abc")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleTeacher, session.Role)
	assert.Equal(t, domain.AdminTypeCollege, session.AdminType)
	assert.Equal(t, "101", session.AdminCollegeID)
	assert.Equal(t, "School of Computer Science", session.AdminCollegeName)
}

func TestAuthServiceLogin_InvalidTicket(t *testing.T) {
	db := newTestDB(t)
	admins := repository.NewAdminRepository(dao.NewAdminDAO(db))
	sessions, _ := newTestSessionStore(t, time.Hour)

	validator := &stubValidator{err: cas.ErrAuthenticationFailed}
	svc := service.NewAuthService(validator, admins, sessions)

	_, err := svc.Login(context.Background(), "ST-bogus")
	require.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

func TestAuthServiceLogout(t *testing.T) {
	db := newTestDB(t)
	admins := repository.NewAdminRepository(dao.NewAdminDAO(db))
	sessions, _ := newTestSessionStore(t, time.Hour)

	validator := &stubValidator{
		info: cas.UserInfo{ID: "42", UID: "162050121", UserName: "Alice"},
	}
	svc := service.NewAuthService(validator, admins, sessions)

	session, err := svc.Login(context.Background(), "ST-abc")
	require.NoError(t, err)

	logoutURL, err := svc.Logout(context.Background(), session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, validator.LogoutURL(), logoutURL)

	_, err = svc.CurrentSession(context.Background(), session.AccessToken)
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}
