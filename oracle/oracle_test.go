package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/camelup/race"
	"github.com/lox/camelup/rational"
)

func project(t *testing.T, raceLiteral, diceLiteral string) Projection {
	t.Helper()
	r, err := race.ParseRace(raceLiteral)
	require.NoError(t, err)
	dice, err := race.ParseDice(diceLiteral)
	require.NoError(t, err)
	return Project(r, dice)
}

func TestClearWinner(t *testing.T) {
	t.Parallel()
	// Yellow never moves and red can at best draw level, where it lands on
	// top of yellow and outranks it.
	p := project(t, "r,y", "r")

	assert.True(t, p.Winner.Chance(race.Red).Equal(rational.One()))
	assert.True(t, p.Winner.Chance(race.Yellow).Equal(rational.Zero()))
	assert.Equal(t, 3, p.Total)
}

func TestTwoThirdsOneThird(t *testing.T) {
	t.Parallel()
	// Red passes yellow on a two or a three, and falls short on a one.
	p := project(t, "r,,y", "r")

	assert.True(t, p.Winner.Chance(race.Red).Equal(rational.MustNew(2, 3)))
	assert.True(t, p.Winner.Chance(race.Yellow).Equal(rational.MustNew(1, 3)))
	assert.True(t, p.Loser.Chance(race.Red).Equal(rational.MustNew(1, 3)))
	assert.True(t, p.Loser.Chance(race.Yellow).Equal(rational.MustNew(2, 3)))
}

func TestTotalMatchesPoolSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		dice      string
		wantTotal int
	}{
		{dice: "r", wantTotal: 3},
		{dice: "ry", wantTotal: 2 * 9},
		{dice: "ryg", wantTotal: 6 * 27},
		{dice: "rygw", wantTotal: 24 * 81},
		{dice: "rygwo", wantTotal: 120 * 243},
	}

	for _, tc := range tests {
		p := project(t, "gyor,,,w", tc.dice)
		assert.Equal(t, tc.wantTotal, p.Total, "dice %q", tc.dice)
	}
}

func TestDistributionSumsToOne(t *testing.T) {
	t.Parallel()
	p := project(t, "gyor,,,w", "ryg")

	for name, d := range map[string]Distribution{
		"winner":    p.Winner,
		"runner-up": p.RunnerUp,
		"loser":     p.Loser,
	} {
		sum := rational.Zero()
		for _, c := range race.Camels() {
			chance := d.Chance(c)
			assert.GreaterOrEqual(t, chance.Cmp(rational.Zero()), 0, "%s chance of %s", name, c)
			assert.LessOrEqual(t, chance.Cmp(rational.One()), 0, "%s chance of %s", name, c)
			sum = sum.Add(chance)
		}
		// every camel is present, so no leaf lacks a winner, runner-up
		// or loser and each category distributes the full mass
		assert.True(t, sum.Equal(rational.One()), "%s sums to %s", name, sum)
	}
}

func TestUndefinedCategoriesStillCountTowardsTotal(t *testing.T) {
	t.Parallel()
	// A lone camel has no runner-up and is its own winner and loser.
	p := project(t, "r", "r")

	assert.Equal(t, 3, p.Total)
	assert.Empty(t, p.RunnerUp)
	assert.True(t, p.Winner.Chance(race.Red).Equal(rational.One()))
	assert.True(t, p.Loser.Chance(race.Red).Equal(rational.One()))
}

func TestChanceDefaultsToZero(t *testing.T) {
	t.Parallel()
	p := project(t, "r,y", "r")
	assert.True(t, p.Winner.Chance(race.White).Equal(rational.Zero()))

	var empty Distribution
	assert.True(t, empty.Chance(race.Red).Equal(rational.Zero()))
}

func TestFullRoundProjection(t *testing.T) {
	t.Parallel()
	// All five camels race and all five dice remain: the winner chances
	// must favour the camels ahead, and the mass must balance exactly.
	p := project(t, "gyor,,,w", "gyorw")

	require.Equal(t, 120*243, p.Total)

	white := p.Winner.Chance(race.White)
	green := p.Winner.Chance(race.Green)
	assert.Equal(t, 1, white.Cmp(green), "leader should be favourite over the bottom of the back stack")

	sum := rational.Zero()
	for _, c := range race.Camels() {
		sum = sum.Add(p.Winner.Chance(c))
	}
	assert.True(t, sum.Equal(rational.One()))
}

func TestBehindCamelIsUnderdog(t *testing.T) {
	t.Parallel()
	// From the library example: red trails white by two positions with
	// both dice still in play, so white is the favourite.
	p := project(t, "r,,w", "rw")

	red := p.Winner.Chance(race.Red)
	white := p.Winner.Chance(race.White)
	assert.Equal(t, 1, white.Cmp(red))
	assert.True(t, red.Add(white).Equal(rational.One()))
}
