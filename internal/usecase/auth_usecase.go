package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"piramida/internal/domain/entity"
	"piramida/internal/domain/repository"
	"piramida/pkg/errors"
	"piramida/pkg/logger"
)

type AuthUseCase struct {
	adminRepo repository.AdminRepository
	userRepo  repository.UserRepository
	adminUC   *AdminUseCase
	jwtSecret string
	jwtExpiry int64
}

func NewAuthUseCase(
	adminRepo repository.AdminRepository,
	userRepo repository.UserRepository,
	adminUC *AdminUseCase,
	jwtSecret string,
	jwtExpiry int64,
) *AuthUseCase {
	return &AuthUseCase{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		adminUC:   adminUC,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// AdminClaims are the JWT claims carried by an admin session token.
type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type AdminLoginResult struct {
	Token string        `json:"token"`
	Admin *entity.Admin `json:"admin"`
}

// AdminLogin checks the credentials against the stored accounts and issues a
// session token. The default super-admin is seeded on first use.
func (uc *AuthUseCase) AdminLogin(ctx context.Context, email, password string) (*AdminLoginResult, error) {
	if err := uc.adminUC.EnsureDefaultAdmin(ctx); err != nil {
		return nil, err
	}

	admin, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil || admin.Password != password {
		return nil, errors.Unauthorized("Invalid email or password", nil)
	}

	claims := AdminClaims{
		Email: admin.Email,
		Role:  admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(admin.ID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(uc.jwtExpiry) * time.Second)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, errors.Internal("Failed to issue session token", err)
	}

	logger.Info("Admin logged in: %s", admin.Email)
	return &AdminLoginResult{Token: token, Admin: admin}, nil
}

// VerifyAdminToken parses a session token and returns its claims.
func (uc *AuthUseCase) VerifyAdminToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("Unexpected signing method", nil)
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}
	return claims, nil
}

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Provider  string `json:"provider"`
}

// Register creates a visitor account. There is no password: the consumer auth
// path identifies visitors by email only.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if input.Email == "" {
		return nil, errors.BadRequest("Email is required", nil)
	}

	provider := input.Provider
	if provider == "" {
		provider = entity.ProviderEmail
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		// Signing up again with a known email behaves like a login.
		return existing, nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	user := &entity.User{
		ID:           entity.NewID(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Provider:     provider,
		RegisteredAt: time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Visitor registered: %s (%s)", user.Email, user.Provider)
	return user, nil
}

// Login finds a visitor by email. No password is checked on this path; only
// the admin login verifies credentials.
func (uc *AuthUseCase) Login(ctx context.Context, email string) (*entity.User, error) {
	if email == "" {
		return nil, errors.BadRequest("Email is required", nil)
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
