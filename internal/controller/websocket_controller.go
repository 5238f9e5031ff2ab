package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/chrisrobison/RSG-Chess-mobile/internal/middleware"
	"github.com/chrisrobison/RSG-Chess-mobile/internal/model"
	"github.com/chrisrobison/RSG-Chess-mobile/internal/service"
	"github.com/chrisrobison/RSG-Chess-mobile/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// connWriter serializes writes to one connection, which receives both
// session broadcasts and its own error replies.
type connWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *connWriter) WriteJSON(v interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(v)
}

func (w *connWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.Close()
}

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	connectionID := uuid.New().String()
	w := &connWriter{conn: c}

	// Register this connection with the game; the current state is pushed immediately
	if err := wsc.gameService.RegisterConnection(gameID, connectionID, w); err != nil {
		log.Printf("game %s: failed to register connection: %v", gameID, err)
		wsc.sendError(w, err)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, connectionID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("game %s: read error: %v", gameID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(w, fmt.Errorf("%w: %v", errMalformedMessage, err))
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			wsc.sendError(w, err)
		}
	}
}

// handleMessage applies one inbound command. Successful commands reach the
// client through the session broadcast, so only errors are returned here.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeSelect:
		var p ws.SelectPayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		sq, err := model.ParseSquare(p.Square)
		if err != nil {
			return err
		}
		_, _, err = wsc.gameService.SelectPiece(gameID, sq)
		return err

	case ws.MessageTypeMove:
		var p ws.MovePayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		from, err := model.ParseSquare(p.From)
		if err != nil {
			return err
		}
		to, err := model.ParseSquare(p.To)
		if err != nil {
			return err
		}
		_, _, err = wsc.gameService.HandleMove(gameID, from, to)
		return err

	case ws.MessageTypePromote:
		var p ws.PromotePayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		kind, err := model.ParsePieceKind(p.Kind)
		if err != nil {
			return fmt.Errorf("%w: %s", model.ErrInvalidPromotionKind, err)
		}
		_, _, err = wsc.gameService.CompletePromotion(gameID, kind)
		return err

	case ws.MessageTypeReplay:
		_, err := wsc.gameService.Replay(gameID)
		return err

	default:
		return fmt.Errorf("%w: unknown message type %q", errMalformedMessage, msg.Type)
	}
}

func decodePayload(msg ws.Message, v interface{}) error {
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("%w: %v", errMalformedMessage, err)
	}
	if err := middleware.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", errMalformedMessage, err)
	}
	return nil
}

// Helper method to send error messages
func (wsc *WebSocketController) sendError(w service.StateWriter, err error) {
	_, code := errorCode(err)
	msg, encErr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error(), Code: code})
	if encErr != nil {
		return
	}
	if writeErr := w.WriteJSON(msg); writeErr != nil {
		log.Printf("write error: %v", writeErr)
	}
}
