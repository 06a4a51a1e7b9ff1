package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/domain"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// RequireRole ensures the authenticated admin holds one of the allowed
// roles. Must run after AuthMiddleware.Handle; an unauthenticated request
// never reaches the role check.
func RequireRole(allowed ...domain.AdminRole) fiber.Handler {
	allowedSet := make(map[domain.AdminRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		admin, ok := AdminFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("not authorized, please login to access this resource")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[admin.Role]; !exists {
			return apperrors.NewForbidden("you do not have permission to perform this action")
		}
		return c.Next()
	}
}
