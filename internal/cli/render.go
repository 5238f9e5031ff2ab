package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/chrisrobison/RSG-Chess-mobile/internal/model"
)

// Render prints the board, the side to move and any pending decision.
// The selected piece and its legal destinations are highlighted.
func (t *Terminal) Render() {
	fmt.Fprint(t.out, t.boardString())
	fmt.Fprintln(t.out, t.status())
}

func (t *Terminal) boardString() string {
	board := t.game.Board()
	var selected *model.Square
	var targets []model.Square
	if p := t.game.Selected(); p != nil {
		sq := p.Position
		selected = &sq
		targets = model.LegalMoves(p, board)
	}

	files := t.colors.paint(Cyan, "a b c d e f g h")
	var sb strings.Builder
	sb.WriteString("  " + files + "\n")
	for rank := 0; rank < 8; rank++ {
		label := t.colors.paint(Cyan, fmt.Sprintf("%d", 8-rank))
		sb.WriteString(label + " ")
		for file := 0; file < 8; file++ {
			sq := model.Square{File: file, Rank: rank}
			sb.WriteString(t.cell(board.At(sq), selected != nil && *selected == sq, slices.Contains(targets, sq)))
			sb.WriteString(" ")
		}
		sb.WriteString(label + "\n")
	}
	sb.WriteString("  " + files + "\n")
	return sb.String()
}

func (t *Terminal) cell(p *model.Piece, selected, target bool) string {
	if p == nil {
		if target {
			return t.colors.paint(Green, "*")
		}
		return "."
	}
	symbol := p.Symbol()
	switch {
	case selected:
		return t.colors.paint(OnYellow, symbol)
	case target:
		return t.colors.paint(OnGreen, symbol)
	case p.Color == model.White:
		return t.colors.paint(Blue, symbol)
	default:
		return t.colors.paint(Red, symbol)
	}
}

func (t *Terminal) colorName(c model.Color) string {
	if c == model.White {
		return t.colors.paint(Blue, "White")
	}
	return t.colors.paint(Red, "Black")
}

func (t *Terminal) status() string {
	if outcome := t.game.Outcome(); outcome != nil {
		if outcome.Result == model.Draw {
			return t.colors.paint(Yellow, "Stalemate. Draw.")
		}
		return t.colors.paint(Yellow, "Checkmate. ") + t.colorName(outcome.Result) + t.colors.paint(Yellow, " wins.")
	}
	if pending := t.game.Pending(); pending != nil {
		return fmt.Sprintf("%s pawn on %s promotes: type promote <q|r|b|n>", t.colorName(pending.Color), pending.Square)
	}

	var sb strings.Builder
	sb.WriteString(t.colorName(t.game.ActiveColor()) + " to move")
	if t.game.InCheck() {
		sb.WriteString(t.colors.paint(Magenta, " (check)"))
	}
	if p := t.game.Selected(); p != nil {
		sb.WriteString(fmt.Sprintf(", %s selected", p.Position))
	}
	captured := t.game.Captured()
	for _, side := range []struct {
		color  model.Color
		pieces []model.PieceView
	}{{model.White, captured.White}, {model.Black, captured.Black}} {
		if len(side.pieces) == 0 {
			continue
		}
		symbols := make([]string, 0, len(side.pieces))
		for _, v := range side.pieces {
			symbols = append(symbols, (&model.Piece{Kind: v.Kind, Color: v.Color}).Symbol())
		}
		sb.WriteString(fmt.Sprintf("\n%s captured: %s", t.colorName(side.color), strings.Join(symbols, " ")))
	}
	return sb.String()
}

// Prompt names the side to move, colored like the board.
func (t *Terminal) Prompt() string {
	return t.colors.paint(Yellow, "chess [") + t.colorName(t.game.ActiveColor()) + t.colors.paint(Yellow, "] > ")
}

// formatTurn writes a turn in long algebraic form, e.g. "Ng1-f3" or "e7xd8=Q".
func formatTurn(turn model.Turn) string {
	if turn.Castle != nil {
		if turn.To.File > turn.From.File {
			return "O-O"
		}
		return "O-O-O"
	}
	var sb strings.Builder
	if turn.Kind != model.Pawn {
		sb.WriteString(turn.Kind.Letter())
	}
	sb.WriteString(turn.From.String())
	if turn.Captured != nil {
		sb.WriteString("x")
	} else {
		sb.WriteString("-")
	}
	sb.WriteString(turn.To.String())
	if turn.PromotedTo != "" {
		sb.WriteString("=" + turn.PromotedTo.Letter())
	}
	if turn.EnPassant {
		sb.WriteString(" e.p.")
	}
	return sb.String()
}
