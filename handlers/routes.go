package handlers

import (
	"tip-collect-system/middleware"
	"tip-collect-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, staff *services.StaffService, qr *services.QrService, checkout *services.CheckoutService, tips *services.TipService, adminKey string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	// 🔓 Payer-facing routes — reached from a scanned code, no auth
	app.Get("/qr/:token", qr.Resolve)
	app.Post("/checkout", checkout.CreateCheckout)
	app.Post("/record", tips.Record)

	// 🔐 Admin routes — registration and code management
	admin := app.Group("/", middleware.AdminKeyMiddleware(adminKey))
	admin.Post("/staff", staff.Register)
	admin.Get("/staff", staff.List)
	admin.Get("/staff/:id", staff.GetByID)
	admin.Post("/qr", qr.Mint)
	admin.Get("/qr", qr.List)
}
