package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/camelup/internal/tui"
	"github.com/lox/camelup/race"
)

type CLI struct {
	Race string `arg:"" help:"Race literal to start from, e.g. 'gy,r,+,w'"`
	Dice string `arg:"" optional:"" help:"Dice literal (defaults to all five dice)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("camel-tui"),
		kong.Description("Interactively explore a Camel Up round with live exact odds."))

	r, err := race.ParseRace(cli.Race)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing race: %v\n", err)
		ctx.Exit(1)
	}

	dice := race.DefaultDice()
	if cli.Dice != "" {
		dice, err = race.ParseDice(cli.Dice)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing dice: %v\n", err)
			ctx.Exit(1)
		}
	}

	if _, err := tea.NewProgram(tui.New(r, dice)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}
