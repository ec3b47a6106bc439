package middleware

import (
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "jwt"

// UserIDKey is the locals key under which the guard stores the session's
// user ID.
const UserIDKey = "user_id"

// SessionRequired is a Fiber middleware that authenticates the request from
// the session cookie. It rejects requests whose cookie is absent, malformed,
// badly signed, or expired, and stores the resolved user ID in the request
// locals for downstream handlers.
func SessionRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		userID, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Debugf("Session token rejected: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired session",
			})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
