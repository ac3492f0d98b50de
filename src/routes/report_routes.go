package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func reportRoutes(router fiber.Router) {
	group := router.Group("/reports")
	group.Use(middleware.AuthJWT)
	group.Post("/generate", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher), controllers.GenerateReport)
	group.Get("/recent", controllers.GetRecentReports)
	group.Get("/:id/download", controllers.DownloadReport)
}
