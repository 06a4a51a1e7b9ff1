package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

const principalKey = "auth_admin"

// AuthMiddleware resolves bearer tokens to admin principals. Any failure
// short-circuits the pipeline before a handler runs.
type AuthMiddleware struct {
	tokens *TokenManager
	admins repository.AdminRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, admins repository.AdminRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, admins: admins}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("not authorized, please login to access this resource")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("not authorized, please login to access this resource")
	}

	adminID, err := m.tokens.Parse(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired token, please login again")
	}

	admin, err := m.admins.GetByID(c.Context(), adminID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("admin account no longer exists")
		}
		return apperrors.MapError(err)
	}
	if !admin.Active {
		return apperrors.NewUnauthorized("your account has been deactivated")
	}

	// Never expose the hash downstream.
	admin.PasswordHash = ""
	c.Locals(principalKey, admin)
	return c.Next()
}

// HandleOptional resolves a bearer token when one is presented but never
// rejects the request. Handlers can vary behavior on the principal's presence.
func (m *AuthMiddleware) HandleOptional(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Next()
	}

	adminID, err := m.tokens.Parse(parts[1])
	if err != nil {
		return c.Next()
	}
	admin, err := m.admins.GetByID(c.Context(), adminID)
	if err != nil || !admin.Active {
		return c.Next()
	}

	admin.PasswordHash = ""
	c.Locals(principalKey, admin)
	return c.Next()
}

// AdminFromContext retrieves the authenticated admin.
func AdminFromContext(c *fiber.Ctx) (*domain.Admin, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	admin, ok := val.(*domain.Admin)
	return admin, ok
}
