// Package oracle answers the question every Camel Up player keeps asking:
// who is going to come out ahead this round?
//
// It answers exactly, not approximately. Every possible way the remaining
// dice can come out of the pyramid is enumerated, and the resulting leaf
// counts are turned into exact fractions. No sampling, no floats.
package oracle

import (
	"github.com/lox/camelup/internal/tree"
	"github.com/lox/camelup/race"
	"github.com/lox/camelup/rational"
)

// Distribution maps each camel to its exact probability for one outcome
// category. Camels that can never reach the category are simply absent.
type Distribution map[race.Camel]rational.Rational

// Chance returns the camel's probability, or exact zero when the camel
// never occurs in this category.
func (d Distribution) Chance(c race.Camel) rational.Rational {
	if chance, ok := d[c]; ok {
		return chance
	}
	return rational.Zero()
}

// Projection holds the per-category distributions for a round, plus the
// number of enumerated outcomes they were computed over. For a pool of n
// dice, Total is always n!·3ⁿ.
type Projection struct {
	Winner   Distribution
	RunnerUp Distribution
	Loser    Distribution
	Total    int
}

// Project computes the exact winner, runner-up and loser distributions for
// a race, given the dice still in the pyramid.
//
// The cost is the full game tree: n!·3ⁿ leaves for n remaining dice. With
// the five camel dice of the real game that is 29160 leaves; the factorial
// growth makes substantially larger pools infeasible by design.
func Project(r race.Race, dice race.Dice) Projection {
	t := tree.New(r)
	t.Expand(dice)

	counts := newLeafCounter()
	t.VisitLeaves(counts.visit)

	return Projection{
		Winner:   counts.winner.distribution(counts.total),
		RunnerUp: counts.runnerUp.distribution(counts.total),
		Loser:    counts.loser.distribution(counts.total),
		Total:    counts.total,
	}
}

// leafCounter tallies one count per leaf per category. A leaf where a
// category is undefined (say, a single-camel race has no runner-up) still
// counts towards the total.
type leafCounter struct {
	total    int
	winner   tally
	runnerUp tally
	loser    tally
}

func newLeafCounter() *leafCounter {
	return &leafCounter{
		winner:   make(tally),
		runnerUp: make(tally),
		loser:    make(tally),
	}
}

func (lc *leafCounter) visit(leaf race.Race) {
	lc.total++
	if winner, ok := leaf.Winner(); ok {
		lc.winner[winner]++
	}
	if runnerUp, ok := leaf.RunnerUp(); ok {
		lc.runnerUp[runnerUp]++
	}
	if loser, ok := leaf.Loser(); ok {
		lc.loser[loser]++
	}
}

type tally map[race.Camel]int

// distribution converts counts into exact fractions of the total. The total
// is at least one (the root is a leaf for an empty pool), so construction
// cannot fail.
func (t tally) distribution(total int) Distribution {
	d := make(Distribution, len(t))
	for camel, count := range t {
		d[camel] = rational.MustNew(int64(count), int64(total))
	}
	return d
}
