package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func holidayRoutes(router fiber.Router) {
	group := router.Group("/holidays")
	group.Use(middleware.AuthJWT)
	group.Get("/", controllers.GetHolidays)
	group.Get("/calendar", controllers.GetHolidayCalendar)
	group.Post("/", middleware.RequireRole(models.RoleAdmin), controllers.CreateHoliday)
	group.Put("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateHoliday)
	group.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteHoliday)
}
