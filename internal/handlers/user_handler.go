package handlers

import (
	"errors"

	"katalog/internal/middleware"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// UserHandler handles HTTP requests for the authenticated user's own record.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers the user routes behind the session guard.
func (h *UserHandler) RegisterRoutes(router fiber.Router, sessionGuard fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/me", sessionGuard, h.HandleMe)
}

// HandleMe returns the current user as {id, email}. A valid token whose user
// has since been deleted is an authentication failure, not a 404.
func (h *UserHandler) HandleMe(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	user, err := h.userService.Me(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		log.Errorf("Error loading user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load user",
		})
	}

	return c.JSON(user)
}
