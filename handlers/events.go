package handlers

import (
	"hunter-fitness-system/middleware"
	"hunter-fitness-system/models"
	"hunter-fitness-system/services"
	"hunter-fitness-system/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupEventRoutes wires the informational calendar.
func SetupEventRoutes(app *fiber.App, events *services.EventService) {
	app.Get("/api/events", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		all, err := events.List()
		if err != nil {
			return serviceError(c, err, "Events")
		}
		return c.JSON(all)
	})

	app.Get("/api/events/active", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		active, err := events.ListActive()
		if err != nil {
			return serviceError(c, err, "Events")
		}
		return c.JSON(active)
	})

	app.Get("/api/events/:id", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid event id")
		}
		event, err := events.Get(id)
		if err != nil {
			return serviceError(c, err, "Event")
		}
		return c.JSON(event)
	})

	app.Post("/api/events", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		var req models.EventCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid event data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid event data")
		}
		event, err := events.Create(&req)
		if err != nil {
			return serviceError(c, err, "Event")
		}
		return c.Status(fiber.StatusCreated).JSON(event)
	})

	app.Patch("/api/events/:id", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid event id")
		}
		var req models.EventPatchRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid event data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid event data")
		}
		event, err := events.Patch(id, &req)
		if err != nil {
			return serviceError(c, err, "Event")
		}
		return c.JSON(event)
	})

	app.Delete("/api/events/:id", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid event id")
		}
		if err := events.Delete(id); err != nil {
			return serviceError(c, err, "Event")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
