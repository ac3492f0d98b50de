package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func leaveRoutes(router fiber.Router) {
	group := router.Group("/leaves")
	group.Use(middleware.AuthJWT)
	group.Post("/", middleware.RequireRole(models.RoleStudent, models.RoleTeacher), controllers.ApplyLeave)
	group.Get("/mine", controllers.GetMyLeaves)
	group.Get("/pending", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher), controllers.GetPendingLeaves)
	group.Post("/:id/review", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher), controllers.ReviewLeave)
}
