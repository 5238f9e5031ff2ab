// Package cli implements a hot-seat chess game played from a terminal.
package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/chrisrobison/RSG-Chess-mobile/internal/model"
)

var errQuit = errors.New("quit")

// Command defines a terminal command with its handler
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     func(t *Terminal, args []string) error
}

// Terminal drives one local game from text commands. Squares typed on
// their own select pieces and make moves; everything else is a command.
type Terminal struct {
	game     *model.Game
	out      io.Writer
	colors   palette
	commands map[string]*Command
	order    []*Command
}

func New(out io.Writer, color bool) *Terminal {
	t := &Terminal{
		game:     model.NewStandardGame(),
		out:      out,
		colors:   palette{enabled: color},
		commands: make(map[string]*Command),
	}
	t.registerCommands()
	return t
}

func (t *Terminal) Game() *model.Game {
	return t.game
}

func (t *Terminal) Register(cmd *Command) {
	t.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		t.commands[cmd.ShortName] = cmd
	}
	t.order = append(t.order, cmd)
}

// CommandNames lists the full command names in registration order.
func (t *Terminal) CommandNames() []string {
	names := make([]string, 0, len(t.order))
	for _, cmd := range t.order {
		names = append(names, cmd.Name)
	}
	return names
}

// Execute runs one input line and reports whether the user asked to quit.
func (t *Terminal) Execute(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	var err error
	if cmd, ok := t.commands[fields[0]]; ok {
		err = cmd.Handler(t, fields[1:])
	} else {
		err = t.play(fields)
	}
	if errors.Is(err, errQuit) {
		return true
	}
	if err != nil {
		fmt.Fprintf(t.out, "%s\n", t.colors.paint(Red, "Error: "+err.Error()))
	}
	return false
}

func (t *Terminal) registerCommands() {
	t.Register(&Command{
		Name:        "promote",
		ShortName:   "p",
		Description: "Choose the piece a pawn on the last rank becomes",
		Usage:       "promote <q|r|b|n>",
		Handler:     promoteHandler,
	})
	t.Register(&Command{
		Name:        "board",
		ShortName:   "b",
		Description: "Show the board",
		Usage:       "board",
		Handler:     boardHandler,
	})
	t.Register(&Command{
		Name:        "moves",
		ShortName:   "m",
		Description: "List legal moves for the selected piece, a square, or the side to move",
		Usage:       "moves [square]",
		Handler:     movesHandler,
	})
	t.Register(&Command{
		Name:        "history",
		ShortName:   "h",
		Description: "Show the moves played so far",
		Usage:       "history",
		Handler:     historyHandler,
	})
	t.Register(&Command{
		Name:        "place",
		Description: "Put a piece on the board before the first move",
		Usage:       "place <kind> <white|black> <square>",
		Handler:     placeHandler,
	})
	t.Register(&Command{
		Name:        "new",
		ShortName:   "n",
		Description: "Start a new game",
		Usage:       "new [standard|empty]",
		Handler:     newGameHandler,
	})
	t.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Description: "Show available commands",
		Usage:       "help",
		Handler:     helpHandler,
	})
	t.Register(&Command{
		Name:        "quit",
		ShortName:   "exit",
		Description: "Leave the game",
		Usage:       "quit",
		Handler:     func(*Terminal, []string) error { return errQuit },
	})
}

// play handles input made of squares: "e2" selects (or moves the selected
// piece there), "e2 e4" and "e2e4" move.
func (t *Terminal) play(fields []string) error {
	switch {
	case len(fields) == 2:
		from, err := model.ParseSquare(fields[0])
		if err != nil {
			return err
		}
		to, err := model.ParseSquare(fields[1])
		if err != nil {
			return err
		}
		return t.move(from, to)
	case len(fields) == 1 && len(fields[0]) == 4:
		from, errFrom := model.ParseSquare(fields[0][:2])
		to, errTo := model.ParseSquare(fields[0][2:])
		if errFrom == nil && errTo == nil {
			return t.move(from, to)
		}
	case len(fields) == 1 && len(fields[0]) == 2:
		sq, err := model.ParseSquare(fields[0])
		if err == nil {
			return t.selectOrMove(sq)
		}
	}
	return fmt.Errorf("unknown command %q, type 'help' for commands", fields[0])
}

func (t *Terminal) selectOrMove(sq model.Square) error {
	if sel := t.game.Selected(); sel != nil && t.game.Phase() == model.PhaseAwaitingDestination {
		if sel.Position == sq {
			t.game.Deselect()
			t.Render()
			return nil
		}
		if p := t.game.Board().At(sq); p == nil || p.Color != sel.Color {
			return t.move(sel.Position, sq)
		}
	}
	if _, err := t.game.SelectPiece(sq); err != nil {
		return err
	}
	t.Render()
	return nil
}

func (t *Terminal) move(from, to model.Square) error {
	result, err := t.game.ApplyMove(from, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "%s\n", formatTurn(result.Turn))
	t.Render()
	return nil
}

func promoteHandler(t *Terminal, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: promote <q|r|b|n>")
	}
	kind, err := model.ParsePieceKind(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s", model.ErrInvalidPromotionKind, err)
	}
	result, err := t.game.CompletePromotion(kind)
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "%s\n", formatTurn(result.Turn))
	t.Render()
	return nil
}

func boardHandler(t *Terminal, _ []string) error {
	t.Render()
	return nil
}

func movesHandler(t *Terminal, args []string) error {
	var pieces []*model.Piece
	switch {
	case len(args) > 0:
		sq, err := model.ParseSquare(args[0])
		if err != nil {
			return err
		}
		if p := t.game.Board().At(sq); p != nil {
			pieces = append(pieces, p)
		}
	case t.game.Selected() != nil:
		pieces = append(pieces, t.game.Selected())
	default:
		pieces = t.game.Board().Pieces(t.game.ActiveColor())
	}

	printed := 0
	for _, p := range pieces {
		moves := t.game.LegalMovesAt(p.Position)
		if len(moves) == 0 {
			continue
		}
		targets := make([]string, 0, len(moves))
		for _, to := range moves {
			targets = append(targets, to.String())
		}
		slices.Sort(targets)
		fmt.Fprintf(t.out, "%s%s: %s\n", p.Kind.Letter(), p.Position, strings.Join(targets, " "))
		printed++
	}
	if printed == 0 {
		fmt.Fprintln(t.out, "No legal moves")
	}
	return nil
}

func historyHandler(t *Terminal, _ []string) error {
	history := t.game.History()
	if len(history) == 0 {
		fmt.Fprintln(t.out, "No moves yet")
		return nil
	}
	for i := 0; i < len(history); i += 2 {
		line := fmt.Sprintf("%d. %s", i/2+1, formatTurn(history[i]))
		if i+1 < len(history) {
			line += " " + formatTurn(history[i+1])
		}
		fmt.Fprintln(t.out, line)
	}
	return nil
}

func placeHandler(t *Terminal, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: place <kind> <white|black> <square>")
	}
	kind, err := model.ParsePieceKind(args[0])
	if err != nil {
		return err
	}
	color, err := model.ParseColor(args[1])
	if err != nil {
		return err
	}
	sq, err := model.ParseSquare(args[2])
	if err != nil {
		return err
	}
	if _, err := t.game.PlacePiece(kind, sq, color); err != nil {
		return err
	}
	t.Render()
	return nil
}

func newGameHandler(t *Terminal, args []string) error {
	setup := "standard"
	if len(args) > 0 {
		setup = args[0]
	}
	switch setup {
	case "standard":
		t.game = model.NewStandardGame()
	case "empty":
		t.game = model.NewGame()
	default:
		return fmt.Errorf("unknown setup %q, use standard or empty", setup)
	}
	t.Render()
	return nil
}

func helpHandler(t *Terminal, _ []string) error {
	fmt.Fprintf(t.out, "\n%s\n", t.colors.paint(Cyan, "Commands:"))
	fmt.Fprintf(t.out, "  %-36s %s\n", "<square>", "Select a piece, or move the selected piece there")
	fmt.Fprintf(t.out, "  %-36s %s\n", "<from> <to> | <from><to>", "Move a piece")
	for _, cmd := range t.order {
		fmt.Fprintf(t.out, "  %-36s %s\n", cmd.Usage, cmd.Description)
	}
	fmt.Fprintln(t.out)
	return nil
}
