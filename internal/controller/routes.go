package controller

import (
	"github.com/chrisrobison/RSG-Chess-mobile/internal/api"
	"github.com/chrisrobison/RSG-Chess-mobile/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes mounts the REST and WebSocket endpoints on app.
func RegisterRoutes(app *fiber.App, gc *GameController, wsc *WebSocketController) {
	// Set up WebSocket routes
	app.Get("/ws/games/:gameId",
		middleware.EnsureGameID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsc.HandleConnection, websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		}),
	)

	// Set up REST routes
	games := app.Group("/api/games")
	games.Post("/", middleware.ValidateBody[api.CreateGameRequest](), gc.CreateGame)

	ensureID := middleware.EnsureGameID()
	games.Get("/:gameId", ensureID, gc.GetGameState)
	games.Delete("/:gameId", ensureID, gc.DeleteGame)
	games.Post("/:gameId/pieces", ensureID, middleware.ValidateBody[api.PlacePieceRequest](), gc.PlacePiece)
	games.Post("/:gameId/select", ensureID, middleware.ValidateBody[api.SelectRequest](), gc.SelectPiece)
	games.Get("/:gameId/moves/:square", ensureID, gc.GetLegalMoves)
	games.Post("/:gameId/moves", ensureID, middleware.ValidateBody[api.MoveRequest](), gc.MakeMove)
	games.Post("/:gameId/promotion", ensureID, middleware.ValidateBody[api.PromotionRequest](), gc.CompletePromotion)
	games.Post("/:gameId/replay", ensureID, gc.Replay)
}
