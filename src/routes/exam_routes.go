package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func examRoutes(router fiber.Router) {
	group := router.Group("/exams")
	group.Use(middleware.AuthJWT)
	group.Get("/", controllers.GetExamSchedules)
	group.Post("/", middleware.RequireRole(models.RoleAdmin), controllers.CreateExamSchedule)
	group.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteExamSchedule)
}
