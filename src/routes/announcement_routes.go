package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func announcementRoutes(router fiber.Router) {
	group := router.Group("/announcements")
	group.Use(middleware.AuthJWT)
	group.Get("/", controllers.GetActiveAnnouncements)
	group.Get("/:id", controllers.GetAnnouncementByID)
	group.Post("/", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher), controllers.CreateAnnouncement)
	group.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteAnnouncement)
}
