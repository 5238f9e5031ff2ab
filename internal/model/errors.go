package model

import "errors"

var (
	ErrInvalidSelection     = errors.New("invalid selection")
	ErrIllegalMove          = errors.New("illegal move")
	ErrPromotionNotPending  = errors.New("no promotion pending")
	ErrPromotionPending     = errors.New("promotion pending")
	ErrInvalidPromotionKind = errors.New("invalid promotion kind")
	ErrGameOver             = errors.New("game already over")
	ErrSquareOccupied       = errors.New("square occupied")
	ErrInvalidSquare        = errors.New("invalid square")
	ErrInvalidPiece         = errors.New("invalid piece")
	ErrSetupClosed          = errors.New("setup closed")
)
