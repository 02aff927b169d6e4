package usecase

import (
	"context"
	"time"

	"piramida/internal/domain/entity"
	"piramida/internal/domain/repository"
	"piramida/internal/infrastructure/sync"
	"piramida/pkg/errors"
	"piramida/pkg/logger"
)

// Seeded when the accounts collection is empty so the back office is never
// locked out.
const (
	defaultAdminEmail    = "samispahiu1979@gmail.com"
	defaultAdminPassword = "spahiu121"
)

type AdminUseCase struct {
	adminRepo   repository.AdminRepository
	pricingRepo repository.PricingRepository
	notifier    *sync.Notifier
}

func NewAdminUseCase(adminRepo repository.AdminRepository, pricingRepo repository.PricingRepository, notifier *sync.Notifier) *AdminUseCase {
	return &AdminUseCase{
		adminRepo:   adminRepo,
		pricingRepo: pricingRepo,
		notifier:    notifier,
	}
}

// EnsureDefaultAdmin lazily creates the super-admin on first access.
func (uc *AdminUseCase) EnsureDefaultAdmin(ctx context.Context) error {
	admins, err := uc.adminRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(admins) > 0 {
		return nil
	}

	defaultAdmin := &entity.Admin{
		ID:        1,
		Email:     defaultAdminEmail,
		Password:  defaultAdminPassword,
		CreatedAt: time.Now(),
		Role:      entity.RoleSuperAdmin,
	}
	if err := uc.adminRepo.Create(ctx, defaultAdmin); err != nil {
		return err
	}
	logger.Info("Seeded default super-admin account")
	return nil
}

type AddAdminInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AddAdmin creates a back-office account; duplicate emails are rejected.
func (uc *AdminUseCase) AddAdmin(ctx context.Context, input AddAdminInput) (*entity.Admin, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.BadRequest("Please fill in all fields", nil)
	}

	role := input.Role
	if role == "" {
		role = entity.RoleAdmin
	}

	if _, err := uc.adminRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, errors.Conflict("Admin with this email already exists")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	admin := &entity.Admin{
		ID:        entity.NewID(),
		Email:     input.Email,
		Password:  input.Password,
		CreatedAt: time.Now(),
		Role:      role,
	}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info("Admin account added: %s (%s)", admin.Email, admin.Role)
	uc.notifier.Publish(sync.CollectionAdmins)
	return admin, nil
}

// DeleteAdmin removes an account; the super-admin role is protected.
func (uc *AdminUseCase) DeleteAdmin(ctx context.Context, id int64) error {
	admins, err := uc.adminRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, admin := range admins {
		if admin.ID != id {
			continue
		}
		if admin.Role == entity.RoleSuperAdmin {
			return errors.Forbidden("The super-admin account cannot be deleted", nil)
		}
		if err := uc.adminRepo.Delete(ctx, id); err != nil {
			return err
		}
		logger.Info("Admin account deleted: %s", admin.Email)
		uc.notifier.Publish(sync.CollectionAdmins)
		return nil
	}

	return errors.NotFound("Admin", nil)
}

// ListAdmins returns every back-office account, seeding the default one if
// the collection is empty.
func (uc *AdminUseCase) ListAdmins(ctx context.Context) ([]*entity.Admin, error) {
	if err := uc.EnsureDefaultAdmin(ctx); err != nil {
		return nil, err
	}
	return uc.adminRepo.List(ctx)
}

// GetPricing returns the plan prices, falling back to the defaults when the
// singleton has never been saved.
func (uc *AdminUseCase) GetPricing(ctx context.Context) (*entity.PricingSettings, error) {
	settings, err := uc.pricingRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return entity.DefaultPricingSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdatePricing overwrites the pricing singleton wholesale.
func (uc *AdminUseCase) UpdatePricing(ctx context.Context, settings *entity.PricingSettings) error {
	if settings.Basic == "" || settings.Featured == "" || settings.Premium == "" {
		return errors.BadRequest("All three plan prices are required", nil)
	}
	if err := uc.pricingRepo.Set(ctx, settings); err != nil {
		return err
	}
	logger.Info("Pricing settings updated")
	uc.notifier.Publish(sync.CollectionPricing)
	return nil
}
