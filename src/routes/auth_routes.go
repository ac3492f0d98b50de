package routes

import (
	"Backend-EduSync/src/controllers"
	"Backend-EduSync/src/middleware"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Post("/logout", middleware.AuthJWT, controllers.Logout)
	auth.Get("/me", middleware.AuthJWT, controllers.GetProfile)
	auth.Post("/register", middleware.AuthJWT, middleware.RequireRole(models.RoleAdmin), controllers.Register)
}
