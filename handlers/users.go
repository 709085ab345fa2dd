package handlers

import (
	"hunter-fitness-system/middleware"
	"hunter-fitness-system/models"
	"hunter-fitness-system/services"
	"hunter-fitness-system/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes wires the hunter account CRUD. Listing, patching and
// deletion are admin-only; a hunter may read their own record.
func SetupUserRoutes(app *fiber.App, users *services.UserService) {
	app.Get("/api/users", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		all, err := users.List()
		if err != nil {
			return serviceError(c, err, "Users")
		}
		return c.JSON(all)
	})

	app.Get("/api/users/:id", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid user id")
		}

		current := middleware.CurrentUser(c)
		if !current.IsAdmin && current.ID != id {
			return forbidden(c)
		}

		user, err := users.Get(id)
		if err != nil {
			return serviceError(c, err, "User")
		}
		return c.JSON(user)
	})

	app.Patch("/api/users/:id", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid user id")
		}

		var req models.UserPatchRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		user, err := users.Patch(id, &req)
		if err != nil {
			return serviceError(c, err, "User")
		}
		return c.JSON(user)
	})

	app.Delete("/api/users/:id", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid user id")
		}
		if err := users.Delete(id); err != nil {
			return serviceError(c, err, "User")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
