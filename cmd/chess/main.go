package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chrisrobison/RSG-Chess-mobile/internal/cli"
	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	var (
		color   = flag.Bool("color", true, "colorize output when stdout is a terminal")
		history = flag.String("history", ".chess_history", "line history file (empty disables it)")
	)
	flag.Parse()

	t := cli.New(os.Stdout, *color && term.IsTerminal(int(os.Stdout.Fd())))

	items := make([]readline.PrefixCompleterInterface, 0)
	for _, name := range t.CommandNames() {
		items = append(items, readline.PcItem(name))
	}

	// Initialize readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          t.Prompt(),
		HistoryFile:     *history,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println("Two-player chess. Type 'help' for commands.")
	t.Render()

	for {
		rl.SetPrompt(t.Prompt())
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if t.Execute(strings.TrimSpace(line)) {
			break
		}
	}
}
