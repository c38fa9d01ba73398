package handler

import (
	"errors"
	"strconv"

	"go-store-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a positive integer route parameter
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// respondError maps a service failure to an HTTP status. In legacy mode
// every failure collapses to 500, matching the behavior of the system this
// replaces; callers still handle their own boundary validation as 400.
func respondError(c *fiber.Ctx, legacy bool, err error) error {
	if legacy {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrStockNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrStockExists),
		errors.Is(err, service.ErrProductHasStock),
		errors.Is(err, service.ErrEmailTaken):
		status = fiber.StatusConflict
	case errors.Is(err, service.ErrInsufficientStock):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidQuantity):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserInactive):
		status = fiber.StatusUnauthorized
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
