package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/pkg/cas"
	"github.com/digitpainter/vote-v4/internal/repository"
)

var (
	ErrAuthenticationFailed = cas.ErrAuthenticationFailed
	ErrValidatorUnreachable = cas.ErrUnreachable
)

// Role rules are ordered; the first match wins. The 9-digit undergraduate
// rule must stay ahead of the 7-8 digit teacher rule.
var roleRules = []struct {
	pattern *regexp2.Regexp
	role    string
}{
	{regexp2.MustCompile(`^\d{9}$`, regexp2.None), domain.RoleUndergraduate},
	{regexp2.MustCompile(`^S.{8}$`, regexp2.None), domain.RoleGraduate},
	{regexp2.MustCompile(`^B.{8}$`, regexp2.None), domain.RolePhd},
	{regexp2.MustCompile(`^\d{7,8}$`, regexp2.None), domain.RoleTeacher},
}

// DeriveRole maps an external login id to a role. Pure function of the id.
func DeriveRole(uid string) string {
	for _, rule := range roleRules {
		matched, err := rule.pattern.MatchString(uid)
		if err == nil && matched {
			return rule.role
		}
	}

	return domain.RoleUnknown
}

type TicketValidator interface {
	ValidateTicket(ctx context.Context, ticket string) (cas.UserInfo, error)
	LoginURL() string
	LogoutURL() string
}

type AuthAdminRepository interface {
	FindByStaffID(ctx context.Context, staffID string) (domain.Administrator, error)
}

type AuthService struct {
	validator TicketValidator
	admins    AuthAdminRepository
	sessions  *SessionStore
}

func NewAuthService(validator TicketValidator, admins AuthAdminRepository, sessions *SessionStore) *AuthService {
	return &AuthService{
		validator: validator,
		admins:    admins,
		sessions:  sessions,
	}
}

// Login exchanges a single-use ticket for a server-side session. The token
// is random, never derived from the user's identity.
func (s *AuthService) Login(ctx context.Context, ticket string) (domain.Session, error) {
	info, err := s.validator.ValidateTicket(ctx, ticket)
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.validator.ValidateTicket -> %w", err)
	}

	session := domain.Session{
		StaffID:     info.UID,
		Username:    displayName(info),
		AccessToken: uuid.NewString(),
		Role:        DeriveRole(info.UID),
	}

	admin, err := s.admins.FindByStaffID(ctx, info.UID)
	switch {
	case err == nil:
		session.AdminType = admin.AdminType
		session.AdminCollegeID = admin.CollegeID
		session.AdminCollegeName = admin.CollegeName
	case !errors.Is(err, repository.ErrAdminNotFound):
		return domain.Session{}, fmt.Errorf("s.admins.FindByStaffID -> %w", err)
	}

	if err = s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("s.sessions.Save -> %w", err)
	}

	zap.L().Info("user logged in",
		zap.String("staff_id", session.StaffID),
		zap.String("username", session.Username),
		zap.String("role", session.Role),
		zap.String("admin_type", session.AdminType),
	)

	return session, nil
}

func (s *AuthService) CurrentSession(ctx context.Context, token string) (domain.Session, error) {
	return s.sessions.Get(ctx, token)
}

// Logout deletes the session. The logout URL of the upstream identity
// provider is returned so the client can end the SSO session too.
func (s *AuthService) Logout(ctx context.Context, token string) (string, error) {
	session, err := s.sessions.Get(ctx, token)
	if err == nil {
		zap.L().Info("user logged out", zap.String("username", session.Username))
	}

	if err = s.sessions.Delete(ctx, token); err != nil {
		return "", fmt.Errorf("s.sessions.Delete -> %w", err)
	}

	return s.validator.LogoutURL(), nil
}

func (s *AuthService) LoginURL() string {
	return s.validator.LoginURL()
}

func displayName(info cas.UserInfo) string {
	if info.UserName != "" {
		return info.UserName
	}

	return info.Username
}
