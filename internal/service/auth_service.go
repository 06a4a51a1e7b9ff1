package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/church-cms/internal/auth"
	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// invalidCredentials is identical for unknown emails and wrong passwords so
// responses cannot be used to enumerate accounts.
var invalidCredentials = apperrors.NewUnauthorized("invalid email or password")

// AuthService coordinates registration, login and profile flows.
type AuthService struct {
	admins     repository.AdminRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, admins repository.AdminRepository) *AuthService {
	return &AuthService{
		admins:     admins,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// RegisterInput carries new-admin fields.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// Register creates a new admin account and issues a session token.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Admin, string, time.Time, error) {
	// Emails are stored lowercased; normalize here so the returned admin
	// matches the persisted row regardless of caller casing.
	input.Email = strings.ToLower(input.Email)

	if _, err := s.admins.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", time.Time{}, apperrors.NewValidationError("admin with this email already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	admin := &domain.Admin{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Role:         domain.AdminRoleAdmin,
		Active:       true,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Generate(admin.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return admin, token, exp, nil
}

// Login authenticates an admin and records the login time.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Admin, string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, invalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if !admin.Active {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("your account has been deactivated, please contact support")
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, invalidCredentials
	}

	now := time.Now()
	if err := s.admins.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	admin.LastLoginAt = &now

	token, exp, err := s.tokenMgr.Generate(admin.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return admin, token, exp, nil
}

// GetByID loads an admin profile.
func (s *AuthService) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("admin")
		}
		return nil, err
	}
	return admin, nil
}

// ProfileInput carries mutable profile fields.
type ProfileInput struct {
	FirstName    string
	LastName     string
	Phone        string
	ProfileImage string
}

// UpdateProfile applies profile changes for the authenticated admin.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, input ProfileInput) (*domain.Admin, error) {
	admin, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	admin.FirstName = input.FirstName
	admin.LastName = input.LastName
	admin.Phone = input.Phone
	admin.ProfileImage = input.ProfileImage

	if err := s.admins.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// ChangePassword verifies the current password, rotates the hash and issues
// a fresh token. Previously issued tokens remain valid until expiry.
func (s *AuthService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) (string, time.Time, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewNotFound("admin")
		}
		return "", time.Time{}, err
	}

	if err := auth.ComparePassword(admin.PasswordHash, currentPassword); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return "", time.Time{}, err
	}
	if err := s.admins.UpdatePassword(ctx, id, hash); err != nil {
		return "", time.Time{}, err
	}

	return s.tokenMgr.Generate(id)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
