package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sklyit/models"
)

// respondError maps a service error onto an HTTP status and the standard
// response envelope.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch models.KindOf(err) {
	case models.ErrKindMissingField:
		status = fiber.StatusBadRequest
	case models.ErrKindNotFound:
		status = fiber.StatusNotFound
	case models.ErrKindConflict:
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"success": false, "message": err.Error()})
}

// respondValidation reports request-body validation failures.
func respondValidation(c *fiber.Ctx, errs []models.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "validation failed",
		"errors":  errs,
	})
}

func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
}

func respondData(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"success": true, "message": message})
}
