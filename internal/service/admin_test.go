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

func newAdminService(t *testing.T) *service.AdminService {
	t.Helper()

	db := newTestDB(t)

	return service.NewAdminService(repository.NewAdminRepository(dao.NewAdminDAO(db)))
}

func TestAdminServiceCreate(t *testing.T) {
	svc := newAdminService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Administrator{
		StaffID:     "1234567",
		Name:        "Prof. Li",
		AdminType:   domain.AdminTypeCollege,
		CollegeID:   "101",
		CollegeName: "School of Computer Science",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.Create(ctx, domain.Administrator{
		StaffID:   "1234567",
		Name:      "Prof. Li",
		AdminType: domain.AdminTypeSchool,
	})
	require.ErrorIs(t, err, service.ErrAdminStaffIDExists)
}

func TestAdminServiceCreate_FieldValidation(t *testing.T) {
	svc := newAdminService(t)
	ctx := context.Background()

	// School admins never carry college scope, even when submitted.
	created, err := svc.Create(ctx, domain.Administrator{
		StaffID:     "1111111",
		Name:        "Dean",
		AdminType:   domain.AdminTypeSchool,
		CollegeID:   "101",
		CollegeName: "School of Computer Science",
	})
	require.NoError(t, err)
	assert.Empty(t, created.CollegeID)
	assert.Empty(t, created.CollegeName)

	_, err = svc.Create(ctx, domain.Administrator{
		StaffID:   "2222222",
		Name:      "Scoped",
		AdminType: domain.AdminTypeCollege,
	})
	require.ErrorIs(t, err, service.ErrCollegeFieldsRequired)

	_, err = svc.Create(ctx, domain.Administrator{
		StaffID:   "3333333",
		Name:      "Odd",
		AdminType: "galactic",
	})
	require.ErrorIs(t, err, service.ErrInvalidAdminType)
}

func TestAdminServiceUpdate(t *testing.T) {
	svc := newAdminService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Administrator{
		StaffID:   "1234567",
		Name:      "Prof. Li",
		AdminType: domain.AdminTypeSchool,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.Administrator{
		StaffID:     "1234567",
		Name:        "Prof. Li",
		AdminType:   domain.AdminTypeCollege,
		CollegeID:   "101",
		CollegeName: "School of Computer Science",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AdminTypeCollege, updated.AdminType)
	assert.Equal(t, "101", updated.CollegeID)

	_, err = svc.Update(ctx, domain.Administrator{
		StaffID:   "0000000",
		Name:      "Ghost",
		AdminType: domain.AdminTypeSchool,
	})
	require.ErrorIs(t, err, service.ErrAdminNotFound)
}

func TestAdminServiceDelete(t *testing.T) {
	svc := newAdminService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Administrator{
		StaffID:   "1234567",
		Name:      "Prof. Li",
		AdminType: domain.AdminTypeSchool,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "1234567"))

	_, err = svc.GetByStaffID(ctx, "1234567")
	require.ErrorIs(t, err, service.ErrAdminNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "1234567"), service.ErrAdminNotFound)
}
