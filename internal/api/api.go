package api

import "github.com/chrisrobison/RSG-Chess-mobile/internal/model"

// Request types

type CreateGameRequest struct {
	Setup string `json:"setup" validate:"omitempty,oneof=standard empty"`
}

type PlacePieceRequest struct {
	Kind   string `json:"kind" validate:"required,max=6"`
	Color  string `json:"color" validate:"required,oneof=white black w b"`
	Square string `json:"square" validate:"required,len=2"`
}

type SelectRequest struct {
	Square string `json:"square" validate:"required,len=2"`
}

type MoveRequest struct {
	From string `json:"from" validate:"required,len=2"`
	To   string `json:"to" validate:"required,len=2"`
}

type PromotionRequest struct {
	Kind string `json:"kind" validate:"required,max=6"`
}

// Response types

type GameResponse struct {
	GameID string          `json:"gameId"`
	State  model.GameState `json:"state"`
}

type MovesResponse struct {
	Square string         `json:"square"`
	Moves  []model.Square `json:"moves"`
}

type SelectResponse struct {
	Moves []model.Square  `json:"moves"`
	State model.GameState `json:"state"`
}

type MoveResponse struct {
	Result model.MoveResult `json:"result"`
	State  model.GameState  `json:"state"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Error codes
const (
	ErrInvalidRequest       = "INVALID_REQUEST"
	ErrGameNotFound         = "GAME_NOT_FOUND"
	ErrInvalidSelection     = "INVALID_SELECTION"
	ErrIllegalMove          = "ILLEGAL_MOVE"
	ErrPromotionNotPending  = "PROMOTION_NOT_PENDING"
	ErrPromotionPending     = "PROMOTION_PENDING"
	ErrInvalidPromotionKind = "INVALID_PROMOTION_KIND"
	ErrGameOver             = "GAME_OVER"
	ErrSquareOccupied       = "SQUARE_OCCUPIED"
	ErrInvalidSquare        = "INVALID_SQUARE"
	ErrInvalidPiece         = "INVALID_PIECE"
	ErrSetupClosed          = "SETUP_CLOSED"
	ErrInternalError        = "INTERNAL_ERROR"
)
