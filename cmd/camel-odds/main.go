package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/camelup/internal/render"
	"github.com/lox/camelup/internal/scenario"
	"github.com/lox/camelup/oracle"
	"github.com/lox/camelup/race"
	"github.com/lox/camelup/rational"
)

type CLI struct {
	Race      string `arg:"" optional:"" help:"Race literal, e.g. 'gy,r,+,w'"`
	Dice      string `arg:"" optional:"" help:"Dice literal, e.g. 'rw' (defaults to all five dice)"`
	Scenarios string `short:"s" type:"existingfile" help:"HCL scenario file"`
	Scenario  string `help:"Named scenario from the scenario file"`
	Board     bool   `short:"b" help:"Render the board above the results"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	camelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	exactStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("camel-odds"),
		kong.Description("Exact winner, runner-up and loser odds for a Camel Up round."))

	r, dice, err := resolveInput(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	if cli.Board {
		for _, line := range render.Render(r) {
			fmt.Println(line)
		}
		fmt.Println()
	}

	startTime := time.Now()
	projection := oracle.Project(r, dice)
	duration := time.Since(startTime)

	displayProjection(projection)

	fmt.Printf("\n%d outcomes in %v\n", projection.Total, duration.Truncate(time.Microsecond))
}

// resolveInput picks between literal arguments and a named scenario.
func resolveInput(cli CLI) (race.Race, race.Dice, error) {
	if cli.Scenarios != "" {
		if cli.Race != "" {
			return race.Race{}, race.Dice{}, fmt.Errorf("pass either a race literal or --scenarios, not both")
		}
		if cli.Scenario == "" {
			return race.Race{}, race.Dice{}, fmt.Errorf("--scenarios requires --scenario <name>")
		}
		config, err := scenario.Load(cli.Scenarios)
		if err != nil {
			return race.Race{}, race.Dice{}, err
		}
		s, err := config.Get(cli.Scenario)
		if err != nil {
			return race.Race{}, race.Dice{}, err
		}
		return s.Parse()
	}

	if cli.Race == "" {
		return race.Race{}, race.Dice{}, fmt.Errorf("a race literal is required (or --scenarios/--scenario)")
	}

	r, err := race.ParseRace(cli.Race)
	if err != nil {
		return race.Race{}, race.Dice{}, fmt.Errorf("parsing race: %w", err)
	}

	dice := race.DefaultDice()
	if cli.Dice != "" {
		dice, err = race.ParseDice(cli.Dice)
		if err != nil {
			return race.Race{}, race.Dice{}, fmt.Errorf("parsing dice: %w", err)
		}
	}

	return r, dice, nil
}

func displayProjection(p oracle.Projection) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("camel"),
		headerStyle.Render("win"),
		headerStyle.Render("place"),
		headerStyle.Render("last"))

	for _, row := range sortedRows(p) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			camelStyle.Render(row.camel.String()),
			formatChance(row.win),
			formatChance(row.place),
			formatChance(row.last))
	}

	w.Flush()
}

type row struct {
	camel race.Camel
	win   rational.Rational
	place rational.Rational
	last  rational.Rational
}

// sortedRows lists every camel that occurs in any category, best winning
// chance first.
func sortedRows(p oracle.Projection) []row {
	var rows []row
	for _, c := range race.Camels() {
		r := row{
			camel: c,
			win:   p.Winner.Chance(c),
			place: p.RunnerUp.Chance(c),
			last:  p.Loser.Chance(c),
		}
		if r.win.Equal(rational.Zero()) && r.place.Equal(rational.Zero()) && r.last.Equal(rational.Zero()) {
			continue
		}
		rows = append(rows, r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].win.Cmp(rows[j].win) > 0
	})
	return rows
}

func formatChance(chance rational.Rational) string {
	return fmt.Sprintf("%s %s",
		exactStyle.Render(chance.String()),
		percentStyle.Render(fmt.Sprintf("(%.1f%%)", chance.Float64()*100)))
}
