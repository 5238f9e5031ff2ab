package model

type Termination string

const (
	TerminationNone Termination = ""
	Checkmate       Termination = "checkmate"
	Stalemate       Termination = "stalemate"
)

// moveEffect is what performMove did besides relocating the mover.
type moveEffect struct {
	captured  *Piece
	castle    *CastleRookMove
	enPassant bool
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// performMove relocates p to `to` on b with every side effect of the move:
// regular and en passant captures, the rook leg of castling, and the en
// passant target for the next move. Move counts are left to the caller.
func performMove(b *Board, p *Piece, to Square) moveEffect {
	from := p.Position
	effect := moveEffect{}

	if p.Kind == Pawn && to.File != from.File && b.At(to) == nil {
		if ep, ok := b.EnPassantTarget(); ok && ep == to {
			effect.captured = b.Remove(Square{File: to.File, Rank: from.Rank})
			effect.enPassant = true
		}
	}
	if captured := b.Relocate(from, to); captured != nil {
		effect.captured = captured
	}

	if p.Kind == King && abs(to.File-from.File) == 2 {
		rookFrom := Square{File: 7, Rank: from.Rank}
		rookTo := Square{File: to.File - 1, Rank: from.Rank}
		if to.File < from.File {
			rookFrom = Square{File: 0, Rank: from.Rank}
			rookTo = Square{File: to.File + 1, Rank: from.Rank}
		}
		b.Relocate(rookFrom, rookTo)
		effect.castle = &CastleRookMove{From: rookFrom, To: rookTo}
	}

	b.enPassant = nil
	if p.Kind == Pawn && abs(to.Rank-from.Rank) == 2 {
		skipped := Square{File: from.File, Rank: (from.Rank + to.Rank) / 2}
		b.enPassant = &skipped
	}
	return effect
}

// LegalMoves filters the pseudo-legal moves of p down to those that do not
// leave its own king attacked. Each candidate is played on a copy of b.
func LegalMoves(p *Piece, b *Board) []Square {
	legal := []Square{}
	for _, to := range PseudoLegalMoves(p, b) {
		scratch := b.Clone()
		performMove(scratch, scratch.At(p.Position), to)
		if !IsInCheck(p.Color, scratch) {
			legal = append(legal, to)
		}
	}
	return legal
}

// IsAttacked reports whether any piece of byColor attacks sq. Pinned
// attackers still count.
func IsAttacked(sq Square, byColor Color, b *Board) bool {
	for _, p := range b.Pieces(byColor) {
		for _, target := range AttackedSquares(p, b) {
			if target == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether color's king is attacked. A side without a king
// is never in check.
func IsInCheck(color Color, b *Board) bool {
	king := b.King(color)
	if king == nil {
		return false
	}
	return IsAttacked(king.Position, color.Opponent(), b)
}

// HasLegalMove reports whether any piece of color can move.
func HasLegalMove(color Color, b *Board) bool {
	for _, p := range b.Pieces(color) {
		if len(LegalMoves(p, b)) > 0 {
			return true
		}
	}
	return false
}

// TerminalState classifies the position for the side about to move.
func TerminalState(color Color, b *Board) Termination {
	if HasLegalMove(color, b) {
		return TerminationNone
	}
	if IsInCheck(color, b) {
		return Checkmate
	}
	return Stalemate
}
