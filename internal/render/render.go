// Package render draws a race as a terminal board: one column per position,
// camel stacks drawn bottom-up, traps on the tile they occupy.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/camelup/race"
)

// boardSize is the track length of the physical game. Shorter races are
// padded so the board always looks complete; longer ones simply extend.
const boardSize = 16

var (
	camelStyles = map[race.Camel]lipgloss.Style{
		race.Red:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		race.Orange: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		race.Yellow: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		race.Green:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		race.White:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
	}

	oasisStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	mirageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	finishStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	rulerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Tile is one position of the board: a camel stack (bottom first), an oasis,
// a mirage, or nothing.
type Tile struct {
	Stack  []race.Camel
	Oasis  bool
	Mirage bool
}

// Board lays a race out as tiles, one per position, back of the race first.
func Board(r race.Race) []Tile {
	tiles := make([]Tile, 1, boardSize)
	current := 0
	for _, m := range r.Markers() {
		switch m.Kind {
		case race.KindDivider:
			tiles = append(tiles, Tile{})
			current++
		case race.KindCamel:
			tiles[current].Stack = append(tiles[current].Stack, m.Camel)
		case race.KindOasis:
			tiles[current].Oasis = true
		case race.KindMirage:
			tiles[current].Mirage = true
		}
	}
	for len(tiles) < boardSize {
		tiles = append(tiles, Tile{})
	}
	return tiles
}

// Render returns the board as printable lines: one row per stack level, top
// row first, followed by a tile-number ruler.
func Render(r race.Race) []string {
	tiles := Board(r)

	height := 1
	for _, tile := range tiles {
		if len(tile.Stack) > height {
			height = len(tile.Stack)
		}
	}

	lines := make([]string, 0, height+1)
	for level := height - 1; level >= 0; level-- {
		var sb strings.Builder
		for _, tile := range tiles {
			sb.WriteString(fmt.Sprintf("  %s ", cell(tile, level)))
		}
		sb.WriteString(fmt.Sprintf("  %s ", finishStyle.Render("┇")))
		lines = append(lines, sb.String())
	}

	var ruler strings.Builder
	for i := range tiles {
		ruler.WriteString(rulerStyle.Render(fmt.Sprintf(" %2d ", i+1)))
	}
	lines = append(lines, ruler.String())

	return lines
}

func cell(tile Tile, level int) string {
	if level < len(tile.Stack) {
		camel := tile.Stack[level]
		return camelStyles[camel].Render(string(camel.Token()))
	}
	if level == 0 {
		if tile.Oasis {
			return oasisStyle.Render("+")
		}
		if tile.Mirage {
			return mirageStyle.Render("-")
		}
	}
	return " "
}
