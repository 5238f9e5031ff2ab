package model

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

func play(t *testing.T, g *Game, moves ...[2]string) {
	t.Helper()
	for _, m := range moves {
		if _, err := g.ApplyMove(mustSquare(t, m[0]), mustSquare(t, m[1])); err != nil {
			t.Fatalf("move %s-%s: %v", m[0], m[1], err)
		}
	}
}

func gameFrom(t *testing.T, entries ...string) *Game {
	t.Helper()
	g := NewGame()
	for _, e := range entries {
		kind, err := ParsePieceKind(e[:1])
		if err != nil {
			t.Fatalf("entry %q: %v", e, err)
		}
		color := White
		if strings.ToLower(e[:1]) == e[:1] {
			color = Black
		}
		if _, err := g.PlacePiece(kind, mustSquare(t, e[1:]), color); err != nil {
			t.Fatalf("entry %q: %v", e, err)
		}
	}
	return g
}

func TestFoolsMate(t *testing.T) {
	g := NewStandardGame()
	play(t, g,
		[2]string{"f2", "f3"},
		[2]string{"e7", "e5"},
		[2]string{"g2", "g4"},
	)
	res, err := g.ApplyMove(mustSquare(t, "d8"), mustSquare(t, "h4"))
	if err != nil {
		t.Fatalf("mating move: %v", err)
	}
	if res.Outcome == nil || res.Outcome.Termination != Checkmate || res.Outcome.Result != Black {
		t.Fatalf("outcome = %+v, want black wins by checkmate", res.Outcome)
	}
	if !res.Check || !g.InCheck() {
		t.Fatalf("white should be in check")
	}
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s", g.Phase())
	}
	if TerminalState(White, g.Board()) != Checkmate {
		t.Fatalf("terminal state for white is not checkmate")
	}
	if HasLegalMove(White, g.Board()) {
		t.Fatalf("white still has legal moves")
	}
	if result, ok := g.TerminalResult(); !ok || result != Black {
		t.Fatalf("TerminalResult = %q, %v", result, ok)
	}

	history := len(g.History())
	if _, err := g.ApplyMove(mustSquare(t, "a2"), mustSquare(t, "a3")); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after mate: %v", err)
	}
	if _, err := g.SelectPiece(mustSquare(t, "a2")); !errors.Is(err, ErrGameOver) {
		t.Fatalf("select after mate: %v", err)
	}
	if _, err := g.CompletePromotion(Queen); !errors.Is(err, ErrGameOver) {
		t.Fatalf("promote after mate: %v", err)
	}
	if _, err := g.PlacePiece(Queen, mustSquare(t, "d4"), White); !errors.Is(err, ErrGameOver) {
		t.Fatalf("place after mate: %v", err)
	}
	if len(g.LegalMovesAt(mustSquare(t, "a2"))) != 0 {
		t.Fatalf("legal moves offered after mate")
	}
	if len(g.History()) != history {
		t.Fatalf("history changed after game over")
	}
}

func TestStalemateEndsInDraw(t *testing.T) {
	g := gameFrom(t, "kh8", "Qg5", "Kf7")
	res, err := g.ApplyMove(mustSquare(t, "g5"), mustSquare(t, "g6"))
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if res.Check {
		t.Fatalf("stalemate is not check")
	}
	if res.Outcome == nil || res.Outcome.Termination != Stalemate || res.Outcome.Result != Draw {
		t.Fatalf("outcome = %+v, want draw by stalemate", res.Outcome)
	}
	if result, ok := g.TerminalResult(); !ok || result != Draw {
		t.Fatalf("TerminalResult = %q, %v", result, ok)
	}
}

func TestPromotion(t *testing.T) {
	g := gameFrom(t, "Ke1", "Pa7", "ke8")
	res, err := g.ApplyMove(mustSquare(t, "a7"), mustSquare(t, "a8"))
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if !res.PromotionPending || g.Phase() != PhasePromotionPending {
		t.Fatalf("expected pending promotion, phase %s", g.Phase())
	}
	if g.Pending() == nil || g.Pending().Square != mustSquare(t, "a8") {
		t.Fatalf("pending = %+v", g.Pending())
	}
	if g.Pending().Pawn != nil || g.State().Promotion.Pawn != nil {
		t.Fatalf("pending promotion exposes the live pawn")
	}
	g.Pending().Color = Black
	if g.Pending().Color != White {
		t.Fatalf("changing the returned promotion changed the game")
	}
	if g.ActiveColor() != Black {
		t.Fatalf("active color = %s, want black", g.ActiveColor())
	}

	if _, err := g.ApplyMove(mustSquare(t, "e8"), mustSquare(t, "e7")); !errors.Is(err, ErrPromotionPending) {
		t.Fatalf("move during promotion: %v", err)
	}
	if _, err := g.SelectPiece(mustSquare(t, "e8")); !errors.Is(err, ErrPromotionPending) {
		t.Fatalf("select during promotion: %v", err)
	}
	for _, kind := range []PieceKind{King, Pawn, "dragon"} {
		if _, err := g.CompletePromotion(kind); !errors.Is(err, ErrInvalidPromotionKind) {
			t.Fatalf("promote to %s: %v", kind, err)
		}
	}
	if g.Phase() != PhasePromotionPending {
		t.Fatalf("rejected promotion changed phase to %s", g.Phase())
	}

	res, err = g.CompletePromotion(Queen)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if p := g.Board().At(mustSquare(t, "a8")); p == nil || p.Kind != Queen || p.Color != White {
		t.Fatalf("a8 = %+v, want white queen", p)
	}
	if res.Turn.PromotedTo != Queen || g.History()[0].PromotedTo != Queen {
		t.Fatalf("promotion not recorded: %+v", g.History()[0])
	}
	if !res.Check {
		t.Fatalf("queen on a8 checks the king on e8")
	}
	if g.Phase() != PhaseAwaitingSelection {
		t.Fatalf("phase = %s", g.Phase())
	}
	if _, err := g.CompletePromotion(Queen); !errors.Is(err, ErrPromotionNotPending) {
		t.Fatalf("second promotion: %v", err)
	}
	play(t, g, [2]string{"e8", "e7"})
}

func TestCapturePromotion(t *testing.T) {
	g := gameFrom(t, "Kc1", "Pg7", "rh8", "kd7")
	if _, err := g.ApplyMove(mustSquare(t, "g7"), mustSquare(t, "h8")); err != nil {
		t.Fatalf("capture-promotion: %v", err)
	}
	if captured := g.History()[0].Captured; captured == nil || captured.Kind != Rook {
		t.Fatalf("captured = %+v", captured)
	}
	res, err := g.CompletePromotion(Knight)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if res.Captured == nil || res.Captured.Kind != Rook {
		t.Fatalf("result lost the capture: %+v", res)
	}
	if res.Check || res.Outcome != nil {
		t.Fatalf("knight on h8 neither checks nor ends the game: %+v", res)
	}
	if got := g.Captured().White; len(got) != 1 || got[0].Kind != Rook {
		t.Fatalf("captured by white = %+v", got)
	}
}

func TestSelection(t *testing.T) {
	g := NewStandardGame()
	if _, err := g.SelectPiece(mustSquare(t, "e4")); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("select empty: %v", err)
	}
	if _, err := g.SelectPiece(mustSquare(t, "e7")); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("select opponent: %v", err)
	}
	if g.Phase() != PhaseAwaitingSelection || g.Selected() != nil {
		t.Fatalf("rejected selection mutated state")
	}

	moves, err := g.SelectPiece(mustSquare(t, "g1"))
	if err != nil {
		t.Fatalf("select knight: %v", err)
	}
	if got := names(moves); !slices.Equal(got, []string{"f3", "h3"}) {
		t.Fatalf("knight moves = %v", got)
	}
	if g.Phase() != PhaseAwaitingDestination {
		t.Fatalf("phase = %s", g.Phase())
	}
	state := g.State()
	if state.SelectedSquare == nil || state.SelectedSquare.String() != "g1" || len(state.LegalMoves) != 2 {
		t.Fatalf("state selection = %+v %v", state.SelectedSquare, state.LegalMoves)
	}

	g.Deselect()
	if g.Phase() != PhaseAwaitingSelection || g.Selected() != nil {
		t.Fatalf("deselect failed")
	}

	if _, err := g.SelectPiece(mustSquare(t, "e2")); err != nil {
		t.Fatalf("select pawn: %v", err)
	}
	play(t, g, [2]string{"e2", "e4"})
	if g.Selected() != nil || g.Phase() != PhaseAwaitingSelection {
		t.Fatalf("selection not cleared after move")
	}
}

func TestRejectedMovesLeaveStateUnchanged(t *testing.T) {
	g := NewStandardGame()
	before := g.Board().ASCII()
	tests := []struct {
		name     string
		from, to Square
		want     error
	}{
		{name: "illegal", from: mustSquare(t, "e2"), to: mustSquare(t, "e5"), want: ErrIllegalMove},
		{name: "empty", from: mustSquare(t, "e4"), to: mustSquare(t, "e5"), want: ErrInvalidSelection},
		{name: "opponent", from: mustSquare(t, "e7"), to: mustSquare(t, "e5"), want: ErrInvalidSelection},
		{name: "off board", from: mustSquare(t, "e2"), to: Square{File: 4, Rank: 9}, want: ErrInvalidSquare},
		{name: "own piece", from: mustSquare(t, "a1"), to: mustSquare(t, "a2"), want: ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.ApplyMove(tt.from, tt.to); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
	if g.Board().ASCII() != before || len(g.History()) != 0 || g.ActiveColor() != White {
		t.Fatalf("rejected moves changed the game")
	}
}

func TestMoveRecordsCaptureAndCount(t *testing.T) {
	g := NewStandardGame()
	play(t, g,
		[2]string{"e2", "e4"},
		[2]string{"d7", "d5"},
	)
	res, err := g.ApplyMove(mustSquare(t, "e4"), mustSquare(t, "d5"))
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if res.Captured == nil || res.Captured.Kind != Pawn || res.Captured.Color != Black {
		t.Fatalf("captured = %+v", res.Captured)
	}
	p := g.Board().At(mustSquare(t, "d5"))
	if p.MoveCount != 2 || p.Position != mustSquare(t, "d5") {
		t.Fatalf("pawn = %+v", p)
	}
	if got := g.Captured().White; len(got) != 1 || got[0].Kind != Pawn {
		t.Fatalf("captured by white = %+v", got)
	}
	if last := g.History()[2]; last.Color != White || last.Captured == nil {
		t.Fatalf("last turn = %+v", last)
	}
}

func TestEnPassant(t *testing.T) {
	g := NewStandardGame()
	play(t, g,
		[2]string{"e2", "e4"},
		[2]string{"a7", "a6"},
		[2]string{"e4", "e5"},
		[2]string{"d7", "d5"},
	)
	if !slices.Contains(g.LegalMovesAt(mustSquare(t, "e5")), mustSquare(t, "d6")) {
		t.Fatalf("en passant not offered: %v", names(g.LegalMovesAt(mustSquare(t, "e5"))))
	}
	res, err := g.ApplyMove(mustSquare(t, "e5"), mustSquare(t, "d6"))
	if err != nil {
		t.Fatalf("en passant: %v", err)
	}
	if !res.Turn.EnPassant || res.Captured == nil || res.Captured.Kind != Pawn {
		t.Fatalf("result = %+v", res)
	}
	if g.Board().At(mustSquare(t, "d5")) != nil {
		t.Fatalf("captured pawn still on d5")
	}
}

func TestEnPassantExpires(t *testing.T) {
	g := NewStandardGame()
	play(t, g,
		[2]string{"e2", "e4"},
		[2]string{"a7", "a6"},
		[2]string{"e4", "e5"},
		[2]string{"d7", "d5"},
		[2]string{"h2", "h3"},
		[2]string{"h7", "h6"},
	)
	if slices.Contains(g.LegalMovesAt(mustSquare(t, "e5")), mustSquare(t, "d6")) {
		t.Fatalf("en passant offered a move too late")
	}
	if _, err := g.ApplyMove(mustSquare(t, "e5"), mustSquare(t, "d6")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("late en passant: %v", err)
	}
}

func TestCastlingMovesRook(t *testing.T) {
	g := gameFrom(t, "Ke1", "Rh1", "ke8")
	res, err := g.ApplyMove(mustSquare(t, "e1"), mustSquare(t, "g1"))
	if err != nil {
		t.Fatalf("castle: %v", err)
	}
	if res.Turn.Castle == nil || res.Turn.Castle.From.String() != "h1" || res.Turn.Castle.To.String() != "f1" {
		t.Fatalf("castle leg = %+v", res.Turn.Castle)
	}
	rook := g.Board().At(mustSquare(t, "f1"))
	if rook == nil || rook.Kind != Rook || rook.MoveCount != 1 {
		t.Fatalf("f1 = %+v", rook)
	}
	if g.Board().At(mustSquare(t, "h1")) != nil {
		t.Fatalf("h1 not cleared")
	}
}

func TestPlacePieceOnlyDuringSetup(t *testing.T) {
	g := gameFrom(t, "Ke1", "ke8", "Pa2")
	if _, err := g.PlacePiece(Queen, mustSquare(t, "e1"), White); !errors.Is(err, ErrSquareOccupied) {
		t.Fatalf("place on occupied: %v", err)
	}
	if _, err := g.PlacePiece(Queen, Square{File: -1, Rank: 0}, White); !errors.Is(err, ErrInvalidSquare) {
		t.Fatalf("place off board: %v", err)
	}
	play(t, g, [2]string{"a2", "a3"})
	if _, err := g.PlacePiece(Queen, mustSquare(t, "d4"), White); !errors.Is(err, ErrSetupClosed) {
		t.Fatalf("place after first move: %v", err)
	}
}

func TestTurnParity(t *testing.T) {
	g := NewStandardGame()
	moves := [][2]string{
		{"e2", "e4"}, {"e7", "e5"}, {"g1", "f3"}, {"b8", "c6"}, {"f1", "b5"}, {"a7", "a6"},
	}
	for i, m := range moves {
		play(t, g, m)
		want := White
		if (i+1)%2 == 1 {
			want = Black
		}
		if g.ActiveColor() != want {
			t.Fatalf("after %d moves active = %s, want %s", i+1, g.ActiveColor(), want)
		}
		if last := g.History()[i]; last.Color == g.ActiveColor() {
			t.Fatalf("last turn color %s equals side to move", last.Color)
		}
	}
}

// TestRandomPlayoutsKeepMoverSafe plays seeded random games and checks that
// no legal move ever leaves the mover in check.
func TestRandomPlayoutsKeepMoverSafe(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	promotions := []PieceKind{Queen, Rook, Bishop, Knight}
	for i := 0; i < 10; i++ {
		g := NewStandardGame()
		for ply := 0; ply < 150 && g.Phase() != PhaseGameOver; ply++ {
			mover := g.ActiveColor()
			type candidate struct{ from, to Square }
			var all []candidate
			for _, p := range g.Board().Pieces(mover) {
				for _, to := range LegalMoves(p, g.Board()) {
					all = append(all, candidate{p.Position, to})
				}
			}
			if len(all) == 0 {
				t.Fatalf("no legal moves but phase is %s", g.Phase())
			}
			c := all[rng.Intn(len(all))]
			res, err := g.ApplyMove(c.from, c.to)
			if err != nil {
				t.Fatalf("game %d ply %d: %v", i, ply, err)
			}
			if res.PromotionPending {
				if _, err := g.CompletePromotion(promotions[rng.Intn(len(promotions))]); err != nil {
					t.Fatalf("promotion: %v", err)
				}
			}
			if IsInCheck(mover, g.Board()) {
				t.Fatalf("game %d ply %d: %s left its king in check", i, ply, mover)
			}
			if len(g.History()) != ply+1 {
				t.Fatalf("history length %d after %d plies", len(g.History()), ply+1)
			}
			for _, color := range []Color{White, Black} {
				for _, p := range g.Board().Pieces(color) {
					if g.Board().At(p.Position) != p {
						t.Fatalf("piece position out of sync at %s", p.Position)
					}
				}
			}
		}
	}
}
