package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"imobhub_backend/internal/model"
	"imobhub_backend/internal/service"
	"imobhub_backend/pkg/utils/jwt"
)

// AuthMiddleware bearer token'ı doğrular ve aktif oturumu kontrol eder.
// A token is only honoured while the stored session belongs to its user,
// so logging out revokes every token issued before.
func AuthMiddleware(tokens *jwt.Manager, auth *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or malformed token",
			})
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		user := auth.GetCurrentUser()
		if user == nil || user.ID != claims.UserID {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Session expired",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// RequireRole kullanıcının rolünü kontrol eder
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*jwt.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		for _, role := range roles {
			if claims.Role == string(role) {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to access this resource",
		})
	}
}
