package handlers

import (
	"errors"

	"hunter-fitness-system/middleware"
	"hunter-fitness-system/models"
	"hunter-fitness-system/services"
	"hunter-fitness-system/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupQuestRoutes wires quest templates, the generator and hunters'
// acceptance records. Static paths (active, completed, generate) are
// registered before the :id routes so fiber matches them first.
func SetupQuestRoutes(app *fiber.App, quests *services.QuestService, progression *services.ProgressionService) {
	app.Get("/api/quests", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		all, err := quests.List()
		if err != nil {
			return serviceError(c, err, "Quests")
		}
		return c.JSON(all)
	})

	app.Get("/api/quests/active", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		active, err := quests.ListActive()
		if err != nil {
			return serviceError(c, err, "Quests")
		}
		return c.JSON(active)
	})

	// Synthesizes a quest for the hunter's weakest stat and auto-accepts it.
	app.Post("/api/quests/generate", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		result, err := quests.Generate(user)
		if err != nil {
			return serviceError(c, err, "Quest")
		}
		return c.Status(fiber.StatusCreated).JSON(result)
	})

	app.Get("/api/quests/:id", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid quest id")
		}
		quest, err := quests.Get(id)
		if err != nil {
			return serviceError(c, err, "Quest")
		}
		return c.JSON(quest)
	})

	app.Post("/api/quests", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		var req models.QuestCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid quest data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid quest data")
		}
		quest, err := quests.Create(&req)
		if err != nil {
			return serviceError(c, err, "Quest")
		}
		return c.Status(fiber.StatusCreated).JSON(quest)
	})

	app.Patch("/api/quests/:id", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid quest id")
		}
		var req models.QuestPatchRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid quest data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid quest data")
		}
		quest, err := quests.Patch(id, &req)
		if err != nil {
			return serviceError(c, err, "Quest")
		}
		return c.JSON(quest)
	})

	app.Delete("/api/quests/:id", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid quest id")
		}
		if err := quests.Delete(id); err != nil {
			return serviceError(c, err, "Quest")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Get("/api/user-quests", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		uqs, err := quests.ListForUser(user.ID)
		if err != nil {
			return serviceError(c, err, "User quests")
		}
		return c.JSON(uqs)
	})

	app.Get("/api/user-quests/active", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		details, err := quests.ListForUserDetailed(user.ID, false)
		if err != nil {
			return serviceError(c, err, "User quests")
		}
		return c.JSON(details)
	})

	app.Get("/api/user-quests/completed", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		details, err := quests.ListForUserDetailed(user.ID, true)
		if err != nil {
			return serviceError(c, err, "User quests")
		}
		return c.JSON(details)
	})

	app.Post("/api/user-quests", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		var req models.AcceptQuestRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid user quest data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid user quest data")
		}

		user := middleware.CurrentUser(c)
		uq, err := quests.Accept(user.ID, req.QuestID)
		if err != nil {
			if errors.Is(err, services.ErrQuestAlreadyAccepted) {
				return badRequest(c, "Quest already accepted")
			}
			return serviceError(c, err, "Quest")
		}
		return c.Status(fiber.StatusCreated).JSON(uq)
	})

	app.Patch("/api/user-quests/:id", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid user quest id")
		}

		uq, err := quests.GetUserQuest(id)
		if err != nil {
			return serviceError(c, err, "User quest")
		}
		user := middleware.CurrentUser(c)
		if uq.UserID != user.ID && !user.IsAdmin {
			return forbidden(c)
		}

		var req models.UserQuestPatchRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid user quest data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid user quest data")
		}

		updated, err := quests.PatchUserQuest(id, &req)
		if err != nil {
			return serviceError(c, err, "User quest")
		}
		return c.JSON(updated)
	})

	app.Post("/api/user-quests/:id/progress", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid user quest id")
		}

		uq, err := quests.GetUserQuest(id)
		if err != nil {
			return serviceError(c, err, "User quest")
		}
		user := middleware.CurrentUser(c)
		if uq.UserID != user.ID && !user.IsAdmin {
			return forbidden(c)
		}

		var req models.ProgressRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid progress data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid progress data")
		}
		if req.Amount == 0 {
			req.Amount = 1
		}

		updated, err := progression.RecordProgress(id, req.Amount)
		if err != nil {
			return serviceError(c, err, "User quest")
		}
		return c.JSON(updated)
	})
}
