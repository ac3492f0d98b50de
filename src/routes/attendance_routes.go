package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func attendanceRoutes(router fiber.Router) {
	group := router.Group("/attendance")
	group.Use(middleware.AuthJWT)
	group.Post("/daily", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher), controllers.MarkAttendance)
	group.Get("/daily", controllers.GetDailyAttendance)
	group.Get("/monthly/:studentId", controllers.GetMonthlyAttendance)
	group.Get("/stats", controllers.GetAttendanceStats)
}
