package handlers

import (
	"errors"
	"fmt"

	"vendorhub/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validationError renders a validator failure: message carries the first
// violated field's message, errors the full per-field map.
func validationError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	errorMessages := make(map[string]string)
	first := ""
	for _, e := range validationErrors {
		msg := fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		if first == "" {
			first = msg
		}
		errorMessages[e.Field()] = msg
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": first,
		"errors":  errorMessages,
	})
}

// errorStatus maps the service error taxonomy to an HTTP status code.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		// Duplicate unique fields are reported as a client error, matching
		// the registration contract.
		return fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, apperr.ErrInvalid):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// serviceError renders a service failure with the mapped status code.
func serviceError(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"message": err.Error(),
	})
}
