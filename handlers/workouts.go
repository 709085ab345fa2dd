package handlers

import (
	"hunter-fitness-system/middleware"
	"hunter-fitness-system/models"
	"hunter-fitness-system/services"
	"hunter-fitness-system/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupWorkoutRoutes wires the workout catalog and the recommender.
func SetupWorkoutRoutes(app *fiber.App, workouts *services.WorkoutService) {
	app.Get("/api/workouts", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		all, err := workouts.List()
		if err != nil {
			return serviceError(c, err, "Workouts")
		}
		return c.JSON(all)
	})

	app.Get("/api/workouts/recommended", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		workout, err := workouts.Recommend(user)
		if err != nil {
			return serviceError(c, err, "Workout")
		}
		return c.JSON(workout)
	})

	app.Get("/api/workouts/by-rank/:rank", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		matches, err := workouts.ListByRank(c.Params("rank"))
		if err != nil {
			return serviceError(c, err, "Workouts")
		}
		return c.JSON(matches)
	})

	app.Get("/api/workouts/by-job/:job", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		job, err := utils.DecodeParam(c.Params("job"))
		if err != nil {
			return badRequest(c, "Invalid job")
		}
		matches, err := workouts.ListByJob(job)
		if err != nil {
			return serviceError(c, err, "Workouts")
		}
		return c.JSON(matches)
	})

	app.Get("/api/workouts/:id", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid workout id")
		}
		workout, err := workouts.Get(id)
		if err != nil {
			return serviceError(c, err, "Workout")
		}
		return c.JSON(workout)
	})

	app.Post("/api/workouts", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		var req models.WorkoutCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid workout data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid workout data")
		}
		workout, err := workouts.Create(&req)
		if err != nil {
			return serviceError(c, err, "Workout")
		}
		return c.Status(fiber.StatusCreated).JSON(workout)
	})

	app.Patch("/api/workouts/:id", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid workout id")
		}
		var req models.WorkoutPatchRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid workout data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid workout data")
		}
		workout, err := workouts.Patch(id, &req)
		if err != nil {
			return serviceError(c, err, "Workout")
		}
		return c.JSON(workout)
	})

	app.Delete("/api/workouts/:id", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid workout id")
		}
		if err := workouts.Delete(id); err != nil {
			return serviceError(c, err, "Workout")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
