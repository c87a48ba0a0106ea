package controllers

import (
	"strings"
	"time"

	"github.com/NITHINKR06/wellness/src/services"
	"github.com/NITHINKR06/wellness/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var authValidate = validator.New()

type credentialsIn struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterUser godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body credentialsIn true "credentials"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} models.ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *fiber.Ctx) error {
	var req credentialsIn
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := authValidate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Valid email and a password of at least 6 characters are required")
	}

	user, err := services.RegisterUser(c.Context(), req.Email, req.Password)
	if err != nil {
		// Duplicate email maps to 409, everything else follows the taxonomy.
		if strings.Contains(err.Error(), "already registered") {
			return utils.HandleError(c, fiber.StatusConflict, "Email is already registered")
		}
		return utils.HandleServiceError(c, err)
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID.Hex(),
			"email": user.Email,
		},
	})
}

// LoginUser godoc
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body credentialsIn true "credentials"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} models.ErrorResponse
// @Router       /auth/login [post]
func LoginUser(c *fiber.Ctx) error {
	var req credentialsIn
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := services.AuthenticateUser(c.Context(), req.Email, req.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID.Hex(),
			"email": user.Email,
		},
	})
}

// LogoutUser godoc
// @Summary      Revoke the presented token
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /auth/logout [post]
func LogoutUser(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if token != "" {
		// Blacklist until the token would have expired anyway.
		if err := utils.BlacklistToken(token, 7*24*time.Hour); err != nil {
			return utils.HandleError(c, fiber.StatusInternalServerError, "Logout failed")
		}
	}

	return c.JSON(fiber.Map{
		"message": "Logout successful",
		"success": true,
	})
}
