package domain

import "time"

// AdminRole enumerates administrative privilege levels.
type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperadmin AdminRole = "superadmin"
)

// Admin models an administrative account able to act on restricted resources.
// Accounts are deactivated, never hard-deleted.
type Admin struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	ProfileImage string
	Role         AdminRole
	Active       bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
