package model

type CastleRookMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Turn is one entry of the append-only game history.
type Turn struct {
	Color      Color           `json:"color"`
	Kind       PieceKind       `json:"kind"`
	From       Square          `json:"from"`
	To         Square          `json:"to"`
	Captured   *Piece          `json:"captured,omitempty"`
	PromotedTo PieceKind       `json:"promotedTo,omitempty"`
	Castle     *CastleRookMove `json:"castle,omitempty"`
	EnPassant  bool            `json:"enPassant,omitempty"`
}

// Promotion is a pawn waiting on the last rank for its new kind.
type Promotion struct {
	Pawn   *Piece `json:"-"`
	Square Square `json:"square"`
	Color  Color  `json:"color"`
}

type Outcome struct {
	// Result is the winning color, or Draw.
	Result      Color       `json:"result"`
	Termination Termination `json:"termination"`
}

// MoveResult reports what ApplyMove or CompletePromotion did.
type MoveResult struct {
	Turn             Turn     `json:"turn"`
	Captured         *Piece   `json:"captured,omitempty"`
	PromotionPending bool     `json:"promotionPending"`
	Check            bool     `json:"check"`
	Outcome          *Outcome `json:"outcome,omitempty"`
}

type CapturedPieces struct {
	White []PieceView `json:"white"`
	Black []PieceView `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]PieceView, 0),
		Black: make([]PieceView, 0),
	}
}
