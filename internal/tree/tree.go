// Package tree builds the full game tree for one round: every race reachable
// from a starting race by drawing the remaining dice in every order, with
// every face.
//
// The tree is stored as a flat arena of nodes indexed by position, with
// parent and child links as indexes, so there are no pointer cycles to
// manage. A node with an empty pool is a leaf. Leaves are deliberately never
// deduplicated: one leaf per ordered draw sequence is what makes uniform
// leaf weighting reproduce the exact probability law, so a pool of size n
// always yields n!·3ⁿ leaves.
package tree

import (
	"github.com/lox/camelup/race"
)

// Tree is an arena-backed game tree rooted at a starting race.
type Tree struct {
	nodes []node
}

type node struct {
	parent   int
	race     race.Race
	children map[race.Roll]int
}

// New creates a tree holding only the root race.
func New(start race.Race) *Tree {
	return &Tree{
		nodes: []node{{parent: -1, race: start}},
	}
}

// Expand grows the tree until the dice pool is exhausted on every branch.
// Branching at a node with k dice left is k×3.
func (t *Tree) Expand(dice race.Dice) {
	t.expandNode(0, dice)
}

func (t *Tree) expandNode(index int, dice race.Dice) {
	for _, camel := range dice.Camels() {
		remaining := dice.Remove(camel)
		for _, face := range race.Faces() {
			roll := race.Roll{Camel: camel, Face: face}
			next := t.nodes[index].race.Perform(roll)
			child := t.addChild(index, roll, next)
			t.expandNode(child, remaining)
		}
	}
}

func (t *Tree) addChild(parent int, roll race.Roll, r race.Race) int {
	t.nodes = append(t.nodes, node{parent: parent, race: r})
	child := len(t.nodes) - 1

	if t.nodes[parent].children == nil {
		t.nodes[parent].children = make(map[race.Roll]int)
	}
	t.nodes[parent].children[roll] = child

	return child
}

// Size returns the total number of nodes, root included.
func (t *Tree) Size() int {
	return len(t.nodes)
}

// VisitLeaves calls visit once per leaf, in arena order.
func (t *Tree) VisitLeaves(visit func(race.Race)) {
	for _, n := range t.nodes {
		if len(n.children) == 0 {
			visit(n.race)
		}
	}
}
