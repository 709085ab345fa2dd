package handlers

import (
	"errors"

	"hunter-fitness-system/middleware"
	"hunter-fitness-system/models"
	"hunter-fitness-system/services"
	"hunter-fitness-system/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressionRoutes wires training, rank-up and the leaderboard. The
// leaderboard is the one public read in the API.
func SetupProgressionRoutes(app *fiber.App, progression *services.ProgressionService, users *services.UserService) {
	app.Post("/api/training/:stat", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		stat := c.Params("stat")
		if !models.IsValidStat(stat) {
			return badRequest(c, "Invalid stat type")
		}

		var req models.TrainRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid training data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid training data")
		}
		if req.Amount == 0 {
			req.Amount = 1
		}

		user := middleware.CurrentUser(c)
		result, err := progression.TrainStat(user.ID, stat, req.Amount)
		if err != nil {
			return serviceError(c, err, "User")
		}
		return c.JSON(result)
	})

	app.Post("/api/rank-up", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		result, err := progression.RankUp(user.ID)
		if err != nil {
			if errors.Is(err, services.ErrMaxRank) {
				return badRequest(c, "Already at maximum rank")
			}
			var reqErr *services.RankRequirementError
			if errors.As(err, &reqErr) {
				resp := fiber.Map{"message": reqErr.Message}
				if reqErr.Requirements != nil {
					resp["requirements"] = reqErr.Requirements
				}
				return c.Status(fiber.StatusBadRequest).JSON(resp)
			}
			return serviceError(c, err, "User")
		}
		return c.JSON(result)
	})

	app.Get("/api/leaderboard", func(c *fiber.Ctx) error {
		board, err := users.Leaderboard()
		if err != nil {
			return serviceError(c, err, "Leaderboard")
		}
		return c.JSON(board)
	})
}
