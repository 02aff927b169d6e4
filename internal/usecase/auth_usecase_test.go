package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "piramida/internal/adapter/repository"
	"piramida/internal/domain/entity"
	"piramida/internal/infrastructure/sync"
)

func newAuthFixture() *AuthUseCase {
	adminRepo := adapterrepo.NewMemoryAdminRepository()
	userRepo := adapterrepo.NewMemoryUserRepository()
	adminUC := NewAdminUseCase(adminRepo, adapterrepo.NewMemoryPricingRepository(), sync.NewNotifier())
	return NewAuthUseCase(adminRepo, userRepo, adminUC, "test-secret", 3600)
}

func TestAdminLoginWithDefaultCredentials(t *testing.T) {
	uc := newAuthFixture()

	result, err := uc.AdminLogin(context.Background(), "samispahiu1979@gmail.com", "spahiu121")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, entity.RoleSuperAdmin, result.Admin.Role)

	claims, err := uc.VerifyAdminToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "samispahiu1979@gmail.com", claims.Email)
	assert.Equal(t, entity.RoleSuperAdmin, claims.Role)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	uc := newAuthFixture()
	ctx := context.Background()

	_, err := uc.AdminLogin(ctx, "samispahiu1979@gmail.com", "wrong")
	assert.Error(t, err)

	_, err = uc.AdminLogin(ctx, "nobody@example.com", "spahiu121")
	assert.Error(t, err)
}

func TestVerifyAdminTokenRejectsGarbage(t *testing.T) {
	uc := newAuthFixture()

	_, err := uc.VerifyAdminToken("not-a-token")
	assert.Error(t, err)
}

func TestRegisterAndLoginVisitor(t *testing.T) {
	uc := newAuthFixture()
	ctx := context.Background()

	user, err := uc.Register(ctx, RegisterInput{
		FirstName: "Blerta",
		LastName:  "Gashi",
		Email:     "blerta@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderEmail, user.Provider)
	assert.NotZero(t, user.ID)

	// The consumer path never checks a password.
	found, err := uc.Login(ctx, "blerta@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = uc.Login(ctx, "unknown@example.com")
	assert.Error(t, err)
}

func TestRegisterExistingEmailActsAsLogin(t *testing.T) {
	uc := newAuthFixture()
	ctx := context.Background()

	first, err := uc.Register(ctx, RegisterInput{Email: "blerta@example.com"})
	require.NoError(t, err)

	second, err := uc.Register(ctx, RegisterInput{Email: "blerta@example.com", FirstName: "Other"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
