package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/camelup/internal/render"
	"github.com/lox/camelup/race"
)

type CLI struct {
	Race string `arg:"" help:"Race literal to draw, e.g. 'gy,r,+,w'"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("camel-render"),
		kong.Description("Draw a Camel Up board from a race literal."))

	r, err := race.ParseRace(cli.Race)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing race: %v\n", err)
		ctx.Exit(1)
	}

	for _, line := range render.Render(r) {
		fmt.Println(line)
	}
}
