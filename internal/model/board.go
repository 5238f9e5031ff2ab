package model

import (
	"fmt"
	"strings"
)

const boardSize = 8

// Square addresses a cell. Rank 0 is Black's back row and rank 7 is White's,
// so the notation of a square counts ranks from the bottom: {4, 7} is "e1".
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < boardSize && s.Rank >= 0 && s.Rank < boardSize
}

func (s Square) offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, boardSize-s.Rank)
}

func (s Square) MarshalText() ([]byte, error) {
	if !s.OnBoard() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSquare, s)
	}
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// ParseSquare reads a square in file-letter, rank-digit notation ("e2").
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Square{File: int(s[0] - 'a'), Rank: boardSize - int(s[1]-'0')}, nil
}

// Board is an 8x8 grid indexed [rank][file]. A piece's Position always
// matches the cell that references it.
type Board struct {
	cells     [boardSize][boardSize]*Piece
	enPassant *Square
}

func NewBoard() *Board {
	return &Board{}
}

var backRow = [boardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard returns the opening position.
func NewStandardBoard() *Board {
	b := NewBoard()
	for file := 0; file < boardSize; file++ {
		b.put(&Piece{Kind: backRow[file], Color: Black}, Square{File: file, Rank: 0})
		b.put(&Piece{Kind: Pawn, Color: Black}, Square{File: file, Rank: 1})
		b.put(&Piece{Kind: Pawn, Color: White}, Square{File: file, Rank: 6})
		b.put(&Piece{Kind: backRow[file], Color: White}, Square{File: file, Rank: 7})
	}
	return b
}

func (b *Board) put(p *Piece, sq Square) {
	p.Position = sq
	b.cells[sq.Rank][sq.File] = p
}

// At returns the occupant of sq, or nil for an empty or off-board square.
func (b *Board) At(sq Square) *Piece {
	if !sq.OnBoard() {
		return nil
	}
	return b.cells[sq.Rank][sq.File]
}

// Place puts a new piece on an empty square.
func (b *Board) Place(kind PieceKind, color Color, sq Square) (*Piece, error) {
	if !kind.valid() || !color.valid() {
		return nil, fmt.Errorf("%w: %s %s", ErrInvalidPiece, color, kind)
	}
	if !sq.OnBoard() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSquare, sq)
	}
	if b.At(sq) != nil {
		return nil, fmt.Errorf("%w: %s", ErrSquareOccupied, sq)
	}
	if kind == King {
		if k := b.King(color); k != nil {
			return nil, fmt.Errorf("%w: %s already has a king on %s", ErrInvalidPiece, color, k.Position)
		}
	}
	p := &Piece{Kind: kind, Color: color}
	b.put(p, sq)
	return p, nil
}

// Remove clears sq and returns what was there.
func (b *Board) Remove(sq Square) *Piece {
	p := b.At(sq)
	if p != nil {
		b.cells[sq.Rank][sq.File] = nil
	}
	return p
}

// Relocate moves the occupant of from onto to, returning whatever occupied
// to before. It applies no rules and does not touch move counts.
func (b *Board) Relocate(from, to Square) *Piece {
	p := b.At(from)
	if p == nil || !to.OnBoard() || from == to {
		return nil
	}
	b.cells[from.Rank][from.File] = nil
	captured := b.Remove(to)
	b.put(p, to)
	return captured
}

// Clone returns a deep copy; pieces in the copy are distinct values.
func (b *Board) Clone() *Board {
	c := &Board{}
	for rank := range b.cells {
		for file, p := range b.cells[rank] {
			if p != nil {
				cp := *p
				c.cells[rank][file] = &cp
			}
		}
	}
	if b.enPassant != nil {
		ep := *b.enPassant
		c.enPassant = &ep
	}
	return c
}

// Pieces lists the pieces of a color in rank, then file order.
func (b *Board) Pieces(color Color) []*Piece {
	pieces := []*Piece{}
	for rank := range b.cells {
		for _, p := range b.cells[rank] {
			if p != nil && p.Color == color {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// King returns the first king of the given color, or nil.
func (b *Board) King(color Color) *Piece {
	for rank := range b.cells {
		for _, p := range b.cells[rank] {
			if p != nil && p.Color == color && p.Kind == King {
				return p
			}
		}
	}
	return nil
}

// EnPassantTarget is the square a pawn skipped with a double step on the
// previous move.
func (b *Board) EnPassantTarget() (Square, bool) {
	if b.enPassant == nil {
		return Square{}, false
	}
	return *b.enPassant, true
}

// Grid returns the occupant descriptors indexed [rank][file]; empty cells are nil.
func (b *Board) Grid() [][]*PieceView {
	grid := make([][]*PieceView, boardSize)
	for rank := range b.cells {
		grid[rank] = make([]*PieceView, boardSize)
		for file, p := range b.cells[rank] {
			grid[rank][file] = p.View()
		}
	}
	return grid
}

// ASCII draws the board with rank 8 on top, upper case for White.
func (b *Board) ASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for rank := 0; rank < boardSize; rank++ {
		sb.WriteString(fmt.Sprintf("%d ", boardSize-rank))
		for file := 0; file < boardSize; file++ {
			if p := b.cells[rank][file]; p != nil {
				sb.WriteString(p.Symbol() + " ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString(fmt.Sprintf("%d\n", boardSize-rank))
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
