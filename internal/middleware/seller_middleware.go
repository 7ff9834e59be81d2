package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"markethub/internal/services"
)

// SellerRequired is a Fiber middleware guarding the seller panel routes.
// It checks for a valid seller token issued by RegisterAsSeller.
func SellerRequired(session *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := session.ValidateToken(parts[1])
		if err != nil {
			log.Printf("Seller token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired seller token",
				"error":   err.Error(),
			})
		}

		c.Locals("session_id", claims["session_id"])
		c.Locals("shop_name", claims["shop_name"])

		return c.Next()
	}
}
