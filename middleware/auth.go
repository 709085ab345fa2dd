package middleware

import (
	"hunter-fitness-system/models"
	"hunter-fitness-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// SessionCookie is the name of the login session cookie.
const SessionCookie = "hunter_session"

const userLocal = "current_user"

// SessionContext resolves the session cookie into the current hunter and
// stashes it in the request locals. Requests without a valid session pass
// through anonymously; the Require* middlewares do the gating.
func SessionContext(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Next()
		}

		user, err := users.UserForSession(token)
		if err != nil {
			log.Error().Err(err).Msg("session lookup failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal server error",
			})
		}
		if user != nil {
			c.Locals(userLocal, user)
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated hunter for this request, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocal).(*models.User)
	return user
}

// RequireAuth rejects unauthenticated requests with 401.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authenticated",
			})
		}
		return c.Next()
	}
}

// RequireAdmin rejects unauthenticated requests with 401 and non-admin
// hunters with 403.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authenticated",
			})
		}
		if !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		return c.Next()
	}
}
