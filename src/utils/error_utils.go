// error_utils.go
package utils

import (
	"errors"

	"github.com/NITHINKR06/wellness/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError maps the service error taxonomy onto HTTP responses.
func HandleServiceError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:  fiber.StatusBadRequest,
			Message: validationErr.Message,
			Missing: validationErr.Missing,
		})
	}

	var authErr *models.AuthError
	if errors.As(err, &authErr) {
		return HandleError(c, fiber.StatusUnauthorized, authErr.Error())
	}

	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		return HandleError(c, fiber.StatusNotFound, notFoundErr.Error())
	}

	return HandleError(c, fiber.StatusInternalServerError, err.Error())
}
