package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func feeRoutes(router fiber.Router) {
	group := router.Group("/fees")
	group.Use(middleware.AuthJWT)
	group.Post("/", middleware.RequireRole(models.RoleAdmin), controllers.CreateFeePayment)
	group.Post("/:id/pay", middleware.RequireRole(models.RoleAdmin), controllers.MarkFeePaid)
	group.Get("/student/:studentId", controllers.GetStudentFees)
}
