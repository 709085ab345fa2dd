package handlers

import (
	"errors"
	"time"

	"hunter-fitness-system/middleware"
	"hunter-fitness-system/models"
	"hunter-fitness-system/services"
	"hunter-fitness-system/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes wires registration, login/logout and the current-user
// endpoint. Registration logs the new hunter in immediately, matching the
// login contract.
func SetupAuthRoutes(app *fiber.App, users *services.UserService) {
	app.Post("/api/register", func(c *fiber.Ctx) error {
		var req models.CredentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		user, err := users.Register(req.Username, req.Password, false)
		if err != nil {
			if errors.Is(err, services.ErrUsernameTaken) {
				return badRequest(c, "Username already exists")
			}
			return serviceError(c, err, "User")
		}

		if err := startSession(c, users, user); err != nil {
			return serviceError(c, err, "Session")
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	})

	app.Post("/api/login", func(c *fiber.Ctx) error {
		var req models.CredentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		user, err := users.Authenticate(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Invalid username or password",
				})
			}
			return serviceError(c, err, "User")
		}

		if err := startSession(c, users, user); err != nil {
			return serviceError(c, err, "Session")
		}
		return c.JSON(user)
	})

	app.Post("/api/logout", func(c *fiber.Ctx) error {
		if token := c.Cookies(middleware.SessionCookie); token != "" {
			if err := users.DeleteSession(token); err != nil {
				return serviceError(c, err, "Session")
			}
		}
		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/api/user", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		return c.JSON(middleware.CurrentUser(c))
	})
}

func startSession(c *fiber.Ctx, users *services.UserService, user *models.User) error {
	session, err := users.CreateSession(user.ID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
