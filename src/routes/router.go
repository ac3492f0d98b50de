package routes

import (
	"github.com/gofiber/fiber/v2"
)

// InitRoutes registers every feature's routes under /api.
func InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	authRoutes(api)
	studentRoutes(api)
	classRoutes(api)
	attendanceRoutes(api)
	resultRoutes(api)
	reportRoutes(api)
	holidayRoutes(api)
	announcementRoutes(api)
	leaveRoutes(api)
	feeRoutes(api)
	examRoutes(api)
	adminRoutes(api)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
