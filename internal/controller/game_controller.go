package controller

import (
	"fmt"

	"github.com/chrisrobison/RSG-Chess-mobile/internal/api"
	"github.com/chrisrobison/RSG-Chess-mobile/internal/middleware"
	"github.com/chrisrobison/RSG-Chess-mobile/internal/model"
	"github.com/chrisrobison/RSG-Chess-mobile/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	req := middleware.Body[api.CreateGameRequest](c)

	gameID, state, err := gc.gameService.CreateGame(req.Setup)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(api.GameResponse{
		GameID: gameID,
		State:  state,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := middleware.GameID(c)

	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(api.GameResponse{GameID: gameID, State: state})
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(middleware.GameID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) PlacePiece(c *fiber.Ctx) error {
	gameID := middleware.GameID(c)
	req := middleware.Body[api.PlacePieceRequest](c)

	kind, err := model.ParsePieceKind(req.Kind)
	if err != nil {
		return respondError(c, err)
	}
	color, err := model.ParseColor(req.Color)
	if err != nil {
		return respondError(c, err)
	}
	sq, err := model.ParseSquare(req.Square)
	if err != nil {
		return respondError(c, err)
	}

	state, err := gc.gameService.PlacePiece(gameID, kind, color, sq)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(api.GameResponse{GameID: gameID, State: state})
}

func (gc *GameController) SelectPiece(c *fiber.Ctx) error {
	gameID := middleware.GameID(c)
	req := middleware.Body[api.SelectRequest](c)

	sq, err := model.ParseSquare(req.Square)
	if err != nil {
		return respondError(c, err)
	}
	moves, state, err := gc.gameService.SelectPiece(gameID, sq)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(api.SelectResponse{Moves: moves, State: state})
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	gameID := middleware.GameID(c)

	sq, err := model.ParseSquare(c.Params("square"))
	if err != nil {
		return respondError(c, err)
	}
	moves, err := gc.gameService.LegalMoves(gameID, sq)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(api.MovesResponse{Square: sq.String(), Moves: moves})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := middleware.GameID(c)
	req := middleware.Body[api.MoveRequest](c)

	from, err := model.ParseSquare(req.From)
	if err != nil {
		return respondError(c, err)
	}
	to, err := model.ParseSquare(req.To)
	if err != nil {
		return respondError(c, err)
	}
	result, state, err := gc.gameService.HandleMove(gameID, from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(api.MoveResponse{Result: result, State: state})
}

func (gc *GameController) CompletePromotion(c *fiber.Ctx) error {
	gameID := middleware.GameID(c)
	req := middleware.Body[api.PromotionRequest](c)

	kind, err := model.ParsePieceKind(req.Kind)
	if err != nil {
		return respondError(c, fmt.Errorf("%w: %s", model.ErrInvalidPromotionKind, err))
	}
	result, state, err := gc.gameService.CompletePromotion(gameID, kind)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(api.MoveResponse{Result: result, State: state})
}

func (gc *GameController) Replay(c *fiber.Ctx) error {
	gameID := middleware.GameID(c)

	state, err := gc.gameService.Replay(gameID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(api.GameResponse{GameID: gameID, State: state})
}
