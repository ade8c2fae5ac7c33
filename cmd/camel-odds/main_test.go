package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/camelup/oracle"
	"github.com/lox/camelup/race"
)

func TestResolveInputLiterals(t *testing.T) {
	t.Parallel()
	r, dice, err := resolveInput(CLI{Race: "r,,y", Dice: "r"})
	require.NoError(t, err)
	assert.Equal(t, "r,,y", r.String())
	assert.True(t, dice.Equal(race.NewDice(race.Red)))
}

func TestResolveInputDefaultsToAllDice(t *testing.T) {
	t.Parallel()
	_, dice, err := resolveInput(CLI{Race: "r,y"})
	require.NoError(t, err)
	assert.Equal(t, 5, dice.Len())
}

func TestResolveInputRequiresARace(t *testing.T) {
	t.Parallel()
	_, _, err := resolveInput(CLI{})
	assert.Error(t, err)
}

func TestResolveInputRejectsBadLiterals(t *testing.T) {
	t.Parallel()
	_, _, err := resolveInput(CLI{Race: "r+,y"})
	assert.ErrorIs(t, err, race.ErrCamelInOasis)

	_, _, err = resolveInput(CLI{Race: "r,y", Dice: "r,"})
	assert.ErrorIs(t, err, race.ErrNotACamel)
}

func TestSortedRows(t *testing.T) {
	t.Parallel()
	r, err := race.ParseRace("r,,y")
	require.NoError(t, err)
	dice, err := race.ParseDice("r")
	require.NoError(t, err)

	rows := sortedRows(oracle.Project(r, dice))

	require.Len(t, rows, 2)
	assert.Equal(t, race.Red, rows[0].camel, "red wins 2/3 and sorts first")
	assert.Equal(t, race.Yellow, rows[1].camel)
}

func TestSortedRowsSkipsUninvolvedCamels(t *testing.T) {
	t.Parallel()
	r, err := race.ParseRace("r,y")
	require.NoError(t, err)

	rows := sortedRows(oracle.Project(r, race.NewDice(race.Red)))

	for _, row := range rows {
		assert.NotEqual(t, race.Green, row.camel)
	}
}
