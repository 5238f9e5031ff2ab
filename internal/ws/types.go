package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeSelect     MessageType = "select"
	MessageTypeMove       MessageType = "move"
	MessageTypePromote    MessageType = "promote"
	MessageTypeReplay     MessageType = "replay"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeError      MessageType = "error"
	MessageTypeGameClosed MessageType = "gameClosed"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type SelectPayload struct {
	Square string `json:"square" validate:"required,len=2"`
}

type MovePayload struct {
	From string `json:"from" validate:"required,len=2"`
	To   string `json:"to" validate:"required,len=2"`
}

type PromotePayload struct {
	Kind string `json:"kind" validate:"required,max=6"`
}

// GameClosedPayload is sent once when a game is deleted, just before the
// server closes the connection.
type GameClosedPayload struct {
	GameID string `json:"gameId"`
}

type ErrorPayload struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// NewMessage encodes payload into a message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
