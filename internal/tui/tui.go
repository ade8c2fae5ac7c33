// Package tui is an interactive round explorer: type rolls as they come out
// of the pyramid and watch the board and the exact odds update.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/camelup/internal/render"
	"github.com/lox/camelup/oracle"
	"github.com/lox/camelup/race"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Model is the Bubble Tea model for the round explorer.
type Model struct {
	startRace race.Race
	startDice race.Dice

	current    race.Race
	dice       race.Dice
	projection oracle.Projection

	input    textinput.Model
	errMsg   string
	quitting bool
}

// New creates a model positioned at the start of a round.
func New(start race.Race, dice race.Dice) Model {
	input := textinput.New()
	input.Placeholder = "roll, e.g. r2 (or: reset, quit)"
	input.Focus()
	input.CharLimit = 8

	return Model{
		startRace:  start,
		startDice:  dice,
		current:    start,
		dice:       dice,
		projection: oracle.Project(start, dice),
		input:      input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit(strings.TrimSpace(m.input.Value()))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	m.input.SetValue("")
	m.errMsg = ""

	switch value {
	case "":
		return m, nil
	case "q", "quit":
		m.quitting = true
		return m, tea.Quit
	case "reset":
		m.current = m.startRace
		m.dice = m.startDice
		m.projection = oracle.Project(m.current, m.dice)
		return m, nil
	}

	roll, err := ParseRoll(value)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if !m.dice.Contains(roll.Camel) {
		m.errMsg = fmt.Sprintf("the %s die has already been rolled", roll.Camel)
		return m, nil
	}

	m.current = m.current.Perform(roll)
	m.dice = m.dice.Remove(roll.Camel)
	m.projection = oracle.Project(m.current, m.dice)
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("camel up round explorer"))
	sb.WriteString("\n\n")

	sb.WriteString(paneStyle.Render(strings.Join(render.Render(m.current), "\n")))
	sb.WriteString("\n\n")

	sb.WriteString(labelStyle.Render("odds"))
	sb.WriteString("\n")
	sb.WriteString(m.oddsTable())
	sb.WriteString("\n")

	sb.WriteString(labelStyle.Render("dice left"))
	sb.WriteString(" ")
	sb.WriteString(m.diceTokens())
	sb.WriteString("\n\n")

	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.errMsg != "" {
		sb.WriteString(errorStyle.Render(m.errMsg))
		sb.WriteString("\n")
	}
	sb.WriteString(infoStyle.Render("enter applies a roll, reset restarts the round, esc quits"))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) oddsTable() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-8s %-14s %-14s %-14s\n", "camel", "win", "place", "last"))
	for _, c := range race.Camels() {
		if !m.current.Contains(c) {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-8s %-14s %-14s %-14s\n",
			c,
			formatChance(m.projection.Winner, c),
			formatChance(m.projection.RunnerUp, c),
			formatChance(m.projection.Loser, c)))
	}
	return sb.String()
}

func (m Model) diceTokens() string {
	camels := m.dice.Camels()
	if len(camels) == 0 {
		return infoStyle.Render("none, the round is over")
	}
	tokens := make([]string, len(camels))
	for i, c := range camels {
		tokens[i] = string(c.Token())
	}
	return strings.Join(tokens, " ")
}

func formatChance(d oracle.Distribution, c race.Camel) string {
	chance := d.Chance(c)
	return fmt.Sprintf("%s (%.1f%%)", chance, chance.Float64()*100)
}

// ParseRoll parses a roll literal: a camel token followed by a face digit,
// such as "r2".
func ParseRoll(input string) (race.Roll, error) {
	runes := []rune(input)
	if len(runes) != 2 {
		return race.Roll{}, fmt.Errorf("rolls look like r2: a camel and a face")
	}

	var camel race.Camel
	found := false
	for _, c := range race.Camels() {
		if c.Token() == runes[0] {
			camel = c
			found = true
			break
		}
	}
	if !found {
		return race.Roll{}, fmt.Errorf("%q is not a camel", runes[0])
	}

	switch runes[1] {
	case '1':
		return race.Roll{Camel: camel, Face: race.One}, nil
	case '2':
		return race.Roll{Camel: camel, Face: race.Two}, nil
	case '3':
		return race.Roll{Camel: camel, Face: race.Three}, nil
	default:
		return race.Roll{}, fmt.Errorf("%q is not a face, use 1, 2 or 3", runes[1])
	}
}
