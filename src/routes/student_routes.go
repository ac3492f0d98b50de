package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func studentRoutes(router fiber.Router) {
	group := router.Group("/students")
	group.Use(middleware.AuthJWT)
	group.Get("/", controllers.GetStudents)
	group.Get("/:id", controllers.GetStudentByID)
	group.Post("/", middleware.RequireRole(models.RoleAdmin), controllers.CreateStudent)
	group.Put("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateStudent)
	group.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeactivateStudent)
}
