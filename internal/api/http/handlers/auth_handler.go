package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/dto"
	"github.com/spec-kit/church-cms/internal/auth"
	"github.com/spec-kit/church-cms/internal/service"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// AuthHandler exposes admin authentication endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("first name, last name, email and password are required")
	}
	if len(req.Password) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters")
	}

	admin, token, exp, err := h.auth.Register(c.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "Admin registered successfully", fiber.Map{
		"admin": dto.FromAdmin(admin),
		"auth":  dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("please provide email and password")
	}

	admin, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Login successful", fiber.Map{
		"admin": dto.FromAdmin(admin),
		"auth":  dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	admin, ok := auth.AdminFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authorized, please login to access this resource")
	}
	return success(c, http.StatusOK, "", fiber.Map{"admin": dto.FromAdmin(admin)})
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.AdminFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authorized, please login to access this resource")
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	admin, err := h.auth.UpdateProfile(c.Context(), principal.ID, service.ProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Profile updated successfully", fiber.Map{"admin": dto.FromAdmin(admin)})
}

// ChangePassword handles PUT /api/auth/change-password.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.AdminFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authorized, please login to access this resource")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("current and new password are required")
	}
	if len(req.NewPassword) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters")
	}

	token, exp, err := h.auth.ChangePassword(c.Context(), principal.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Password changed successfully", fiber.Map{
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}
