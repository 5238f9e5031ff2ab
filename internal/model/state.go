package model

// GameState is the read-only view handed to presentation layers.
type GameState struct {
	Board          [][]*PieceView `json:"board"`
	ToMove         Color          `json:"toMove"`
	Phase          Phase          `json:"phase"`
	IsCheck        bool           `json:"isCheck"`
	SelectedSquare *Square        `json:"selectedSquare"`
	LegalMoves     []Square       `json:"legalMoves"`
	Promotion      *Promotion     `json:"promotion"`
	Outcome        *Outcome       `json:"outcome"`
	MoveHistory    []Turn         `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	LastMove       *Turn          `json:"lastMove"`
	EnPassant      *Square        `json:"enPassantTarget"`
}

func (g *Game) State() GameState {
	state := GameState{
		Board:          g.board.Grid(),
		ToMove:         g.ActiveColor(),
		Phase:          g.phase,
		IsCheck:        g.inCheck,
		LegalMoves:     make([]Square, 0),
		Promotion:      g.Pending(),
		Outcome:        g.outcome,
		MoveHistory:    g.History(),
		CapturedPieces: g.Captured(),
	}
	if g.selected != nil {
		sq := g.selected.Position
		state.SelectedSquare = &sq
		state.LegalMoves = LegalMoves(g.selected, g.board)
	}
	if n := len(state.MoveHistory); n > 0 {
		last := state.MoveHistory[n-1]
		state.LastMove = &last
	}
	if ep, ok := g.board.EnPassantTarget(); ok {
		state.EnPassant = &ep
	}
	return state
}
