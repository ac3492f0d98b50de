package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func classRoutes(router fiber.Router) {
	group := router.Group("/classes")
	group.Use(middleware.AuthJWT)
	group.Get("/", controllers.GetClasses)
	group.Get("/:id", controllers.GetClassByID)
	group.Get("/:id/sections", controllers.GetSections)
	group.Get("/:id/subjects", controllers.GetSubjects)
	group.Post("/", middleware.RequireRole(models.RoleAdmin), controllers.CreateClass)
	group.Post("/:id/sections", middleware.RequireRole(models.RoleAdmin), controllers.CreateSection)
	group.Post("/:id/subjects", middleware.RequireRole(models.RoleAdmin), controllers.CreateSubject)

	sections := router.Group("/sections")
	sections.Use(middleware.AuthJWT)
	sections.Put("/:sectionId/teachers", middleware.RequireRole(models.RoleAdmin), controllers.AssignTeachers)
}
