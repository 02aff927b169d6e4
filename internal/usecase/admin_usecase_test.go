package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "piramida/internal/adapter/repository"
	"piramida/internal/domain/entity"
	"piramida/internal/infrastructure/sync"
	"piramida/pkg/errors"
)

func newAdminFixture() *AdminUseCase {
	return NewAdminUseCase(
		adapterrepo.NewMemoryAdminRepository(),
		adapterrepo.NewMemoryPricingRepository(),
		sync.NewNotifier(),
	)
}

func TestListAdminsSeedsSuperAdmin(t *testing.T) {
	uc := newAdminFixture()

	admins, err := uc.ListAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 1)

	assert.Equal(t, int64(1), admins[0].ID)
	assert.Equal(t, "samispahiu1979@gmail.com", admins[0].Email)
	assert.Equal(t, entity.RoleSuperAdmin, admins[0].Role)
}

func TestEnsureDefaultAdminOnlySeedsOnce(t *testing.T) {
	uc := newAdminFixture()
	ctx := context.Background()

	require.NoError(t, uc.EnsureDefaultAdmin(ctx))
	require.NoError(t, uc.EnsureDefaultAdmin(ctx))

	admins, err := uc.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestAddAdmin(t *testing.T) {
	uc := newAdminFixture()
	ctx := context.Background()

	admin, err := uc.AddAdmin(ctx, AddAdminInput{
		Email:    "drita@piramidagroup.com",
		Password: "changeme",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NotZero(t, admin.ID)

	// Duplicate emails are refused.
	_, err = uc.AddAdmin(ctx, AddAdminInput{
		Email:    "drita@piramidagroup.com",
		Password: "other",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))

	// Missing fields are refused.
	_, err = uc.AddAdmin(ctx, AddAdminInput{Email: "x@y.com"})
	assert.Error(t, err)
}

func TestDeleteAdminProtectsSuperAdmin(t *testing.T) {
	uc := newAdminFixture()
	ctx := context.Background()

	admins, err := uc.ListAdmins(ctx)
	require.NoError(t, err)

	err = uc.DeleteAdmin(ctx, admins[0].ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	added, err := uc.AddAdmin(ctx, AddAdminInput{Email: "drita@piramidagroup.com", Password: "changeme"})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteAdmin(ctx, added.ID))

	err = uc.DeleteAdmin(ctx, 987654)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestGetPricingDefaults(t *testing.T) {
	uc := newAdminFixture()

	settings, err := uc.GetPricing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "9.99", settings.Basic)
	assert.Equal(t, "24.99", settings.Featured)
	assert.Equal(t, "49.99", settings.Premium)
}

func TestUpdatePricing(t *testing.T) {
	uc := newAdminFixture()
	ctx := context.Background()

	err := uc.UpdatePricing(ctx, &entity.PricingSettings{Basic: "14.99", Featured: "29.99", Premium: "59.99"})
	require.NoError(t, err)

	settings, err := uc.GetPricing(ctx)
	require.NoError(t, err)
	assert.Equal(t, "14.99", settings.Basic)

	err = uc.UpdatePricing(ctx, &entity.PricingSettings{Basic: "14.99"})
	assert.Error(t, err)
}
