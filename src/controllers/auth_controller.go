package controllers

import (
	"strings"

	"Backend-EduSync/src/models"
	"Backend-EduSync/src/services"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Login godoc
// @Summary Login
// @Description Verify credentials and issue an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "email and password"
// @Success 200 {object} services.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	resp, err := services.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(resp)
}

// RefreshToken godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} models.ErrorResponse
// @Router /auth/refresh [post]
func RefreshToken(c *fiber.Ctx) error {
	var req struct {
		UserID       string `json:"userId" validate:"required"`
		RefreshToken string `json:"refreshToken" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "userId and refreshToken are required")
	}

	accessToken, err := services.Refresh(c.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"accessToken": accessToken})
}

// Logout godoc
// @Summary Logout
// @Description Revoke the refresh token and blacklist the current access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	accessToken := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")

	if err := services.Logout(userID, accessToken); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// Register godoc
// @Summary Create a user account
// @Description Admin-only user provisioning
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.User
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func Register(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"required"`
		Role     string `json:"role" validate:"required"`
		RefID    string `json:"refId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	user := models.User{Email: req.Email, Name: req.Name, Role: req.Role}
	if req.RefID != "" {
		refID, err := primitive.ObjectIDFromHex(req.RefID)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid refId")
		}
		user.RefID = refID
	}

	if err := services.CreateUser(c.Context(), &user, req.Password); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Router /auth/me [get]
func GetProfile(c *fiber.Ctx) error {
	id, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
	}
	user, err := services.GetUserByID(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(user)
}
