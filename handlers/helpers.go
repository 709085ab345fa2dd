package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// parseID reads a positive integer route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// badRequest returns a 400 with a client-safe message.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": message})
}

// notFound returns a 404 for a missing entity.
func notFound(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": entity + " not found"})
}

// forbidden returns a 403.
func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden"})
}

// serviceError maps an unexpected service failure to a response. Missing
// rows become 404; anything else is logged and collapsed into a generic
// 500 so no internal detail leaks.
func serviceError(c *fiber.Ctx, err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, entity)
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
