package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func adminRoutes(router fiber.Router) {
	group := router.Group("/admin/jobs")
	group.Use(middleware.AuthJWT, middleware.RequireRole(models.RoleAdmin))
	group.Post("/attendance-recompute", controllers.EnqueueAttendanceRecompute)
	group.Post("/report-cleanup", controllers.EnqueueReportCleanup)
}
