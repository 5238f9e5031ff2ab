package model

import (
	"fmt"
	"strings"
)

type Color string

const (
	White Color = "white"
	Black Color = "black"
	// Draw is only ever a game result, never the color of a piece or a turn.
	Draw Color = "draw"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) valid() bool {
	return c == White || c == Black
}

// ParseColor accepts "white", "black", "w" and "b".
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return "", fmt.Errorf("%w: unknown color %q", ErrInvalidPiece, s)
}

type PieceKind string

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

func (k PieceKind) valid() bool {
	switch k {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

// Letter returns the single-letter symbol of the kind in upper case.
func (k PieceKind) Letter() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return "?"
}

// ParsePieceKind accepts full names ("queen") and letters ("q").
func ParsePieceKind(s string) (PieceKind, error) {
	switch strings.ToLower(s) {
	case "king", "k":
		return King, nil
	case "queen", "q":
		return Queen, nil
	case "rook", "r":
		return Rook, nil
	case "bishop", "b":
		return Bishop, nil
	case "knight", "n":
		return Knight, nil
	case "pawn", "p":
		return Pawn, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidPiece, s)
}

type Piece struct {
	Kind      PieceKind `json:"kind"`
	Color     Color     `json:"color"`
	Position  Square    `json:"position"`
	MoveCount int       `json:"moveCount"`
}

func (p *Piece) HasMoved() bool {
	return p.MoveCount > 0
}

// Symbol is the letter of the piece, upper case for White and lower case for Black.
func (p *Piece) Symbol() string {
	if p.Color == Black {
		return strings.ToLower(p.Kind.Letter())
	}
	return p.Kind.Letter()
}

// PieceView is the read-only descriptor of an occupied cell.
type PieceView struct {
	Kind  PieceKind `json:"kind"`
	Color Color     `json:"color"`
}

func (p *Piece) View() *PieceView {
	if p == nil {
		return nil
	}
	return &PieceView{Kind: p.Kind, Color: p.Color}
}
