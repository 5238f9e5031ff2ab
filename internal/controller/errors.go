package controller

import (
	"errors"

	"github.com/chrisrobison/RSG-Chess-mobile/internal/api"
	"github.com/chrisrobison/RSG-Chess-mobile/internal/model"
	"github.com/chrisrobison/RSG-Chess-mobile/internal/service"
	"github.com/gofiber/fiber/v2"
)

var errMalformedMessage = errors.New("malformed message")

// errorCode maps domain errors to an HTTP status and API error code.
func errorCode(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound, api.ErrGameNotFound
	case errors.Is(err, service.ErrUnknownSetup), errors.Is(err, errMalformedMessage):
		return fiber.StatusBadRequest, api.ErrInvalidRequest
	case errors.Is(err, model.ErrInvalidSelection):
		return fiber.StatusBadRequest, api.ErrInvalidSelection
	case errors.Is(err, model.ErrIllegalMove):
		return fiber.StatusBadRequest, api.ErrIllegalMove
	case errors.Is(err, model.ErrInvalidSquare):
		return fiber.StatusBadRequest, api.ErrInvalidSquare
	case errors.Is(err, model.ErrInvalidPiece):
		return fiber.StatusBadRequest, api.ErrInvalidPiece
	case errors.Is(err, model.ErrInvalidPromotionKind):
		return fiber.StatusBadRequest, api.ErrInvalidPromotionKind
	case errors.Is(err, model.ErrPromotionNotPending):
		return fiber.StatusConflict, api.ErrPromotionNotPending
	case errors.Is(err, model.ErrPromotionPending):
		return fiber.StatusConflict, api.ErrPromotionPending
	case errors.Is(err, model.ErrGameOver):
		return fiber.StatusConflict, api.ErrGameOver
	case errors.Is(err, model.ErrSquareOccupied):
		return fiber.StatusConflict, api.ErrSquareOccupied
	case errors.Is(err, model.ErrSetupClosed):
		return fiber.StatusConflict, api.ErrSetupClosed
	default:
		return fiber.StatusInternalServerError, api.ErrInternalError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status, code := errorCode(err)
	return c.Status(status).JSON(api.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}
