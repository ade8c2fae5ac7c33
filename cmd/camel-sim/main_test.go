package main

import (
	"math/rand"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/camelup/oracle"
	"github.com/lox/camelup/race"
)

func TestSimulateRoundsMatchesExactOdds(t *testing.T) {
	t.Parallel()
	r, err := race.ParseRace("r,,y")
	require.NoError(t, err)
	dice := race.NewDice(race.Red)

	rng := rand.New(rand.NewSource(1))
	result := simulateRounds(r, dice, 30000, rng)

	require.Equal(t, 30000, result.rounds)

	exact := oracle.Project(r, dice)
	for _, c := range []race.Camel{race.Red, race.Yellow} {
		estimated := float64(result.winners[c]) / float64(result.rounds)
		want := exact.Winner.Chance(c).Float64()
		assert.InDelta(t, want, estimated, 0.01, "winner chance of %s", c)
	}
}

func TestSimulateParallelMergesAllRounds(t *testing.T) {
	t.Parallel()
	r, err := race.ParseRace("r,y")
	require.NoError(t, err)
	dice := race.NewDice(race.Red, race.Yellow)

	logger := log.New(os.Stderr)
	result := simulateParallel(r, dice, 1000, 42, 4, logger)

	assert.Equal(t, 1000, result.rounds)

	totalWins := 0
	for _, n := range result.winners {
		totalWins += n
	}
	assert.Equal(t, 1000, totalWins, "every round has a winner")
}

func TestSimulationIsSeedDeterministic(t *testing.T) {
	t.Parallel()
	r, err := race.ParseRace("gy,r,+,w")
	require.NoError(t, err)
	dice := race.DefaultDice()

	first := simulateRounds(r, dice, 500, rand.New(rand.NewSource(7)))
	second := simulateRounds(r, dice, 500, rand.New(rand.NewSource(7)))

	assert.Equal(t, first.winners, second.winners)
	assert.Equal(t, first.losers, second.losers)
}

func TestWorkerCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, workerCount(3))
	workers := workerCount(0)
	assert.Greater(t, workers, 0)
	assert.LessOrEqual(t, workers, 8)
}
