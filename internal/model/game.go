package model

import (
	"fmt"
	"slices"
)

type Phase string

const (
	PhaseAwaitingSelection   Phase = "awaitingSelection"
	PhaseAwaitingDestination Phase = "awaitingDestination"
	PhasePromotionPending    Phase = "promotionPending"
	PhaseGameOver            Phase = "gameOver"
)

// Game owns one board and its turn history and enforces turn order,
// promotion and game end. It is not safe for concurrent use.
type Game struct {
	board    *Board
	history  []Turn
	phase    Phase
	selected *Piece
	pending  *Promotion
	outcome  *Outcome
	inCheck  bool
	captured CapturedPieces
}

// NewGame returns a game on an empty board, ready for PlacePiece.
func NewGame() *Game {
	return newGame(NewBoard())
}

// NewStandardGame returns a game set up in the opening position.
func NewStandardGame() *Game {
	return newGame(NewStandardBoard())
}

func newGame(b *Board) *Game {
	return &Game{
		board:    b,
		history:  make([]Turn, 0),
		phase:    PhaseAwaitingSelection,
		captured: newCapturedPieces(),
	}
}

// PlacePiece adds a piece during setup, before the first move.
func (g *Game) PlacePiece(kind PieceKind, sq Square, color Color) (*Piece, error) {
	if g.phase == PhaseGameOver {
		return nil, ErrGameOver
	}
	if len(g.history) > 0 {
		return nil, fmt.Errorf("%w: %d moves played", ErrSetupClosed, len(g.history))
	}
	p, err := g.board.Place(kind, color, sq)
	if err != nil {
		return nil, err
	}
	g.inCheck = IsInCheck(g.ActiveColor(), g.board)
	return p, nil
}

// ActiveColor is the side to move: White after an even number of turns.
func (g *Game) ActiveColor() Color {
	if len(g.history)%2 == 0 {
		return White
	}
	return Black
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) History() []Turn {
	return slices.Clone(g.history)
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) InCheck() bool {
	return g.inCheck
}

func (g *Game) Selected() *Piece {
	return g.selected
}

// Pending returns a copy of the outstanding promotion, without the pawn
// itself, or nil.
func (g *Game) Pending() *Promotion {
	if g.pending == nil {
		return nil
	}
	return &Promotion{Square: g.pending.Square, Color: g.pending.Color}
}

func (g *Game) Outcome() *Outcome {
	return g.outcome
}

// TerminalResult is the winner, or Draw, once the game has ended.
func (g *Game) TerminalResult() (Color, bool) {
	if g.outcome == nil {
		return "", false
	}
	return g.outcome.Result, true
}

// Captured lists the pieces each side has taken.
func (g *Game) Captured() CapturedPieces {
	return CapturedPieces{
		White: slices.Clone(g.captured.White),
		Black: slices.Clone(g.captured.Black),
	}
}

func (g *Game) acceptingMoves() error {
	switch g.phase {
	case PhaseGameOver:
		return ErrGameOver
	case PhasePromotionPending:
		return fmt.Errorf("%w: choose a piece for %s", ErrPromotionPending, g.pending.Square)
	}
	return nil
}

// LegalMovesAt returns the destinations of the piece on sq when it belongs
// to the side to move and moves are being accepted; otherwise none.
func (g *Game) LegalMovesAt(sq Square) []Square {
	if g.acceptingMoves() != nil {
		return []Square{}
	}
	p := g.board.At(sq)
	if p == nil || p.Color != g.ActiveColor() {
		return []Square{}
	}
	return LegalMoves(p, g.board)
}

// SelectPiece marks the piece on sq as the one about to move and returns
// its legal destinations.
func (g *Game) SelectPiece(sq Square) ([]Square, error) {
	if err := g.acceptingMoves(); err != nil {
		return nil, err
	}
	if !sq.OnBoard() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSquare, sq)
	}
	p := g.board.At(sq)
	if p == nil {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidSelection, sq)
	}
	if p.Color != g.ActiveColor() {
		return nil, fmt.Errorf("%w: %s is not %s's piece", ErrInvalidSelection, sq, g.ActiveColor())
	}
	g.selected = p
	g.phase = PhaseAwaitingDestination
	return LegalMoves(p, g.board), nil
}

// Deselect drops the current selection, if any.
func (g *Game) Deselect() {
	if g.phase != PhaseAwaitingDestination {
		return
	}
	g.selected = nil
	g.phase = PhaseAwaitingSelection
}

// ApplyMove plays the piece on from to to. A pawn reaching the last rank
// leaves the game in PhasePromotionPending until CompletePromotion.
func (g *Game) ApplyMove(from, to Square) (MoveResult, error) {
	if err := g.acceptingMoves(); err != nil {
		return MoveResult{}, err
	}
	if !from.OnBoard() || !to.OnBoard() {
		return MoveResult{}, fmt.Errorf("%w: %s-%s", ErrInvalidSquare, from, to)
	}
	p := g.board.At(from)
	if p == nil || p.Color != g.ActiveColor() {
		return MoveResult{}, fmt.Errorf("%w: no %s piece on %s", ErrInvalidSelection, g.ActiveColor(), from)
	}
	if !slices.Contains(LegalMoves(p, g.board), to) {
		return MoveResult{}, fmt.Errorf("%w: %s %s-%s", ErrIllegalMove, p.Kind, from, to)
	}

	effect := performMove(g.board, p, to)
	p.MoveCount++
	if effect.castle != nil {
		if rook := g.board.At(effect.castle.To); rook != nil {
			rook.MoveCount++
		}
	}

	turn := Turn{
		Color:     p.Color,
		Kind:      p.Kind,
		From:      from,
		To:        to,
		Captured:  effect.captured,
		Castle:    effect.castle,
		EnPassant: effect.enPassant,
	}
	g.history = append(g.history, turn)
	if effect.captured != nil {
		g.recordCapture(p.Color, effect.captured)
	}
	g.selected = nil

	result := MoveResult{Turn: turn, Captured: effect.captured}
	if p.Kind == Pawn && to.Rank == promotionRank(p.Color) {
		g.pending = &Promotion{Pawn: p, Square: to, Color: p.Color}
		g.phase = PhasePromotionPending
		result.PromotionPending = true
		return result, nil
	}

	g.finishTurn()
	result.Check = g.inCheck
	result.Outcome = g.outcome
	return result, nil
}

// CompletePromotion turns the pending pawn into kind and finishes its turn.
func (g *Game) CompletePromotion(kind PieceKind) (MoveResult, error) {
	if g.phase == PhaseGameOver {
		return MoveResult{}, ErrGameOver
	}
	if g.pending == nil {
		return MoveResult{}, ErrPromotionNotPending
	}
	switch kind {
	case Queen, Rook, Bishop, Knight:
	default:
		return MoveResult{}, fmt.Errorf("%w: %q", ErrInvalidPromotionKind, kind)
	}

	g.pending.Pawn.Kind = kind
	g.pending = nil
	last := len(g.history) - 1
	g.history[last].PromotedTo = kind

	g.finishTurn()
	return MoveResult{
		Turn:     g.history[last],
		Captured: g.history[last].Captured,
		Check:    g.inCheck,
		Outcome:  g.outcome,
	}, nil
}

// finishTurn evaluates the position for the side now to move.
func (g *Game) finishTurn() {
	next := g.ActiveColor()
	g.inCheck = IsInCheck(next, g.board)
	switch TerminalState(next, g.board) {
	case Checkmate:
		g.outcome = &Outcome{Result: next.Opponent(), Termination: Checkmate}
		g.phase = PhaseGameOver
	case Stalemate:
		g.outcome = &Outcome{Result: Draw, Termination: Stalemate}
		g.phase = PhaseGameOver
	default:
		g.phase = PhaseAwaitingSelection
	}
}

func (g *Game) recordCapture(by Color, p *Piece) {
	switch by {
	case White:
		g.captured.White = append(g.captured.White, *p.View())
	case Black:
		g.captured.Black = append(g.captured.Black, *p.View())
	}
}
