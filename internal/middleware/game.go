package middleware

import (
	"github.com/chrisrobison/RSG-Chess-mobile/internal/api"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const GameIDKey = "gameID"

// EnsureGameID rejects requests whose :gameId parameter is not a UUID and
// stores the parsed id in the request locals.
func EnsureGameID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameID := c.Params("gameId")
		if _, err := uuid.Parse(gameID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
				Error:   "invalid game id",
				Code:    api.ErrInvalidRequest,
				Details: err.Error(),
			})
		}
		c.Locals(GameIDKey, gameID)
		return c.Next()
	}
}

// GameID returns the id stored by EnsureGameID.
func GameID(c *fiber.Ctx) string {
	id, _ := c.Locals(GameIDKey).(string)
	return id
}
