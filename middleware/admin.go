package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// AdminKeyMiddleware gates the registration/minting endpoints behind a
// shared key. With no key configured the endpoints stay open, matching
// single-venue deployments that sit behind their own gateway.
func AdminKeyMiddleware(expectedKey string) fiber.Handler {
	if expectedKey == "" {
		log.Printf("⚠️  [ADMIN] ADMIN_API_KEY not set — staff and QR admin endpoints are open")
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		if c.Get("X-Admin-Key") != expectedKey {
			log.Printf("🚫 [ADMIN] rejected request to %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid admin key",
			})
		}
		return c.Next()
	}
}
