package dto

import (
	"time"

	"github.com/spec-kit/church-cms/internal/domain"
)

// RegisterRequest payload for new admins.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileRequest payload for profile updates.
type ProfileRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profile_image"`
}

// ChangePasswordRequest payload for password rotation.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminResponse is the admin projection returned to clients. The password
// hash is never serialized.
type AdminResponse struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	ProfileImage string     `json:"profile_image,omitempty"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// FromAdmin maps a domain admin to its response projection.
func FromAdmin(admin *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:           admin.ID,
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		Email:        admin.Email,
		Phone:        admin.Phone,
		ProfileImage: admin.ProfileImage,
		Role:         string(admin.Role),
		Active:       admin.Active,
		LastLoginAt:  admin.LastLoginAt,
		CreatedAt:    admin.CreatedAt,
	}
}
