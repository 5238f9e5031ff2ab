package model

var (
	rookDirs   = []Square{{File: 1, Rank: 0}, {File: -1, Rank: 0}, {File: 0, Rank: 1}, {File: 0, Rank: -1}}
	bishopDirs = []Square{{File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: 1}, {File: -1, Rank: -1}}
	queenDirs  = append(append([]Square{}, rookDirs...), bishopDirs...)
	knightDirs = []Square{{File: 2, Rank: 1}, {File: 2, Rank: -1}, {File: -2, Rank: 1}, {File: -2, Rank: -1}, {File: 1, Rank: 2}, {File: 1, Rank: -2}, {File: -1, Rank: 2}, {File: -1, Rank: -2}}
	kingDirs   = queenDirs
)

// forward is the rank step a pawn of the given color moves by.
func forward(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func pawnStartRank(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

func backRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// promotionRank is the opponent's back rank.
func promotionRank(c Color) int {
	return backRank(c.Opponent())
}

// PseudoLegalMoves lists the destinations allowed by the piece's movement
// pattern and board occupancy, ignoring the safety of its own king.
func PseudoLegalMoves(p *Piece, b *Board) []Square {
	switch p.Kind {
	case Pawn:
		return pawnMoves(p, b)
	case Knight:
		return stepMoves(p, b, knightDirs)
	case Bishop:
		return slideMoves(p, b, bishopDirs)
	case Rook:
		return slideMoves(p, b, rookDirs)
	case Queen:
		return slideMoves(p, b, queenDirs)
	case King:
		return append(stepMoves(p, b, kingDirs), castleMoves(p, b)...)
	default:
		return []Square{}
	}
}

// AttackedSquares lists the squares the piece attacks. Pawns attack both
// forward diagonals and never the square ahead; kings never attack through
// castling.
func AttackedSquares(p *Piece, b *Board) []Square {
	switch p.Kind {
	case Pawn:
		attacks := []Square{}
		for _, df := range []int{-1, 1} {
			if target := p.Position.offset(df, forward(p.Color)); target.OnBoard() {
				attacks = append(attacks, target)
			}
		}
		return attacks
	case King:
		return stepMoves(p, b, kingDirs)
	default:
		return PseudoLegalMoves(p, b)
	}
}

func pawnMoves(p *Piece, b *Board) []Square {
	moves := []Square{}
	dir := forward(p.Color)
	// Check move forward 1
	one := p.Position.offset(0, dir)
	if one.OnBoard() && b.At(one) == nil {
		moves = append(moves, one)
		// Check move forward 2 if not moved
		two := p.Position.offset(0, 2*dir)
		if p.Position.Rank == pawnStartRank(p.Color) && !p.HasMoved() && b.At(two) == nil {
			moves = append(moves, two)
		}
	}
	// Check captures, including en passant
	ep, hasEP := b.EnPassantTarget()
	for _, df := range []int{-1, 1} {
		target := p.Position.offset(df, dir)
		if !target.OnBoard() {
			continue
		}
		if occupant := b.At(target); occupant != nil {
			if occupant.Color != p.Color {
				moves = append(moves, target)
			}
			continue
		}
		if hasEP && target == ep && isEnPassantVictim(b.At(Square{File: target.File, Rank: p.Position.Rank}), p.Color) {
			moves = append(moves, target)
		}
	}
	return moves
}

func isEnPassantVictim(victim *Piece, capturer Color) bool {
	return victim != nil && victim.Kind == Pawn && victim.Color != capturer
}

func stepMoves(p *Piece, b *Board, dirs []Square) []Square {
	moves := []Square{}
	for _, dir := range dirs {
		target := p.Position.offset(dir.File, dir.Rank)
		if !target.OnBoard() {
			continue
		}
		if occupant := b.At(target); occupant == nil || occupant.Color != p.Color {
			moves = append(moves, target)
		}
	}
	return moves
}

func slideMoves(p *Piece, b *Board, dirs []Square) []Square {
	moves := []Square{}
	for _, dir := range dirs {
		target := p.Position.offset(dir.File, dir.Rank)
		for target.OnBoard() {
			occupant := b.At(target)
			if occupant == nil {
				moves = append(moves, target)
			} else {
				if occupant.Color != p.Color {
					moves = append(moves, target)
				}
				break
			}
			target = target.offset(dir.File, dir.Rank)
		}
	}
	return moves
}

// castleSide describes one castling direction from the king's home square.
type castleSide struct {
	rookFile int
	between  []int
	transit  int
	landing  int
}

var castleSides = []castleSide{
	{rookFile: 7, between: []int{5, 6}, transit: 5, landing: 6},
	{rookFile: 0, between: []int{1, 2, 3}, transit: 3, landing: 2},
}

func castleMoves(king *Piece, b *Board) []Square {
	moves := []Square{}
	home := Square{File: 4, Rank: backRank(king.Color)}
	if king.HasMoved() || king.Position != home {
		return moves
	}
	enemy := king.Color.Opponent()
	if IsAttacked(home, enemy, b) {
		return moves
	}
	for _, side := range castleSides {
		rook := b.At(Square{File: side.rookFile, Rank: home.Rank})
		if rook == nil || rook.Kind != Rook || rook.Color != king.Color || rook.HasMoved() {
			continue
		}
		clear := true
		for _, file := range side.between {
			if b.At(Square{File: file, Rank: home.Rank}) != nil {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		transit := Square{File: side.transit, Rank: home.Rank}
		landing := Square{File: side.landing, Rank: home.Rank}
		if IsAttacked(transit, enemy, b) || IsAttacked(landing, enemy, b) {
			continue
		}
		moves = append(moves, landing)
	}
	return moves
}
