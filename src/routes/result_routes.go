package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func resultRoutes(router fiber.Router) {
	group := router.Group("/results")
	group.Use(middleware.AuthJWT)
	group.Post("/subjects", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher), controllers.AddSubjectResult)
	group.Put("/subjects/:id", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher), controllers.UpdateSubjectResult)
	group.Post("/subjects/:id/lock", middleware.RequireRole(models.RoleAdmin), controllers.LockSubjectResult)
	group.Get("/subjects/student/:studentId", controllers.GetSubjectResults)
	group.Post("/overall/:studentId/calculate", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher), controllers.CalculateOverallResult)
	group.Get("/overall/:studentId", controllers.GetOverallResult)
}
