package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/repository"
	"github.com/digitpainter/vote-v4/internal/repository/dao"
	"github.com/digitpainter/vote-v4/internal/service"
)

var (
	schoolAdminSession = domain.Session{
		StaffID:   "1234567",
		Role:      domain.RoleTeacher,
		AdminType: domain.AdminTypeSchool,
	}
	csCollegeAdminSession = domain.Session{
		StaffID:        "7654321",
		Role:           domain.RoleTeacher,
		AdminType:      domain.AdminTypeCollege,
		AdminCollegeID: "101",
	}
)

func newCandidateService(t *testing.T) *service.CandidateService {
	t.Helper()

	db := newTestDB(t)

	return service.NewCandidateService(repository.NewCandidateRepository(dao.NewCandidateDAO(db)))
}

func TestCandidateServiceCreate(t *testing.T) {
	svc := newCandidateService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, schoolAdminSession, domain.Candidate{
		Name:        "Alice",
		CollegeID:   "101",
		CollegeName: "School of Computer Science",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Zero(t, created.VoteCount)

	_, err = svc.Create(ctx, schoolAdminSession, domain.Candidate{
		Name:        "Alice",
		CollegeID:   "102",
		CollegeName: "School of Economics",
	})
	require.ErrorIs(t, err, service.ErrCandidateNameExists)
}

func TestCandidateServiceCreate_CollegeScope(t *testing.T) {
	svc := newCandidateService(t)
	ctx := context.Background()

	// A college admin can create within their own college.
	_, err := svc.Create(ctx, csCollegeAdminSession, domain.Candidate{
		Name:        "Alice",
		CollegeID:   "101",
		CollegeName: "School of Computer Science",
	})
	require.NoError(t, err)

	// But not outside it.
	_, err = svc.Create(ctx, csCollegeAdminSession, domain.Candidate{
		Name:        "Bob",
		CollegeID:   "102",
		CollegeName: "School of Economics",
	})
	require.ErrorIs(t, err, service.ErrCollegeScopeViolated)

	// School admins are unrestricted.
	_, err = svc.Create(ctx, schoolAdminSession, domain.Candidate{
		Name:        "Bob",
		CollegeID:   "102",
		CollegeName: "School of Economics",
	})
	require.NoError(t, err)
}

func TestCandidateServiceUpdate_CollegeScope(t *testing.T) {
	svc := newCandidateService(t)
	ctx := context.Background()

	own, err := svc.Create(ctx, schoolAdminSession, domain.Candidate{
		Name:        "Alice",
		CollegeID:   "101",
		CollegeName: "School of Computer Science",
	})
	require.NoError(t, err)

	foreign, err := svc.Create(ctx, schoolAdminSession, domain.Candidate{
		Name:        "Bob",
		CollegeID:   "102",
		CollegeName: "School of Economics",
	})
	require.NoError(t, err)

	// Another college's candidate is out of reach.
	foreign.Bio = "updated"
	_, err = svc.Update(ctx, csCollegeAdminSession, foreign)
	require.ErrorIs(t, err, service.ErrCollegeScopeViolated)

	// Moving an own candidate out of scope is refused too.
	moved := own
	moved.CollegeID = "102"
	_, err = svc.Update(ctx, csCollegeAdminSession, moved)
	require.ErrorIs(t, err, service.ErrCollegeScopeViolated)

	own.Bio = "president of the robotics club"
	updated, err := svc.Update(ctx, csCollegeAdminSession, own)
	require.NoError(t, err)
	assert.Equal(t, "president of the robotics club", updated.Bio)
}

func TestCandidateServiceDelete(t *testing.T) {
	svc := newCandidateService(t)
	ctx := context.Background()

	foreign, err := svc.Create(ctx, schoolAdminSession, domain.Candidate{
		Name:        "Bob",
		CollegeID:   "102",
		CollegeName: "School of Economics",
	})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, csCollegeAdminSession, foreign.ID), service.ErrCollegeScopeViolated)
	require.NoError(t, svc.Delete(ctx, schoolAdminSession, foreign.ID))

	err = svc.Delete(ctx, schoolAdminSession, foreign.ID)
	require.ErrorIs(t, err, service.ErrCandidateNotFound)
}

func TestCandidateServiceGetByIDs(t *testing.T) {
	svc := newCandidateService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, schoolAdminSession, domain.Candidate{
		Name: "Alice", CollegeID: "101", CollegeName: "School of Computer Science",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, schoolAdminSession, domain.Candidate{
		Name: "Bob", CollegeID: "102", CollegeName: "School of Economics",
	})
	require.NoError(t, err)

	// Unknown ids are silently skipped.
	found, err := svc.GetByIDs(ctx, []uint{first.ID, 9999})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alice", found[0].Name)
}
