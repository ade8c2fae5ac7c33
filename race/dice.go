package race

import (
	"errors"
	"sort"
)

// ErrNotACamel rejects a dice token that is a valid marker but not a camel.
var ErrNotACamel = errors.New("race: dice may only contain camels")

// Dice is the set of camels whose die has not yet been drawn this round.
//
// Dice values are immutable: Remove returns a shrunk copy and leaves the
// receiver untouched, so every node of an enumeration can hold its own pool.
type Dice struct {
	camels map[Camel]struct{}
}

// NewDice builds a pool from the given camels. Duplicates collapse.
func NewDice(camels ...Camel) Dice {
	set := make(map[Camel]struct{}, len(camels))
	for _, c := range camels {
		set[c] = struct{}{}
	}
	return Dice{camels: set}
}

// DefaultDice returns the full pool of all five camels.
func DefaultDice() Dice {
	return NewDice(Camels()...)
}

// ParseDice parses a dice literal such as "ryg". Only camel tokens are
// allowed: any other marker token yields ErrNotACamel, and an unknown token
// yields NotAMarkerError.
func ParseDice(input string) (Dice, error) {
	set := make(map[Camel]struct{}, len(input))
	for _, token := range input {
		m, err := parseMarker(token)
		if err != nil {
			return Dice{}, err
		}
		if !m.isCamel() {
			return Dice{}, ErrNotACamel
		}
		set[m.Camel] = struct{}{}
	}
	return Dice{camels: set}, nil
}

// Remove returns a new pool without the given camel.
func (d Dice) Remove(c Camel) Dice {
	set := make(map[Camel]struct{}, len(d.camels))
	for camel := range d.camels {
		if camel != c {
			set[camel] = struct{}{}
		}
	}
	return Dice{camels: set}
}

// Contains reports whether the camel's die is still in the pool.
func (d Dice) Contains(c Camel) bool {
	_, ok := d.camels[c]
	return ok
}

// Len returns the number of dice left in the pool.
func (d Dice) Len() int {
	return len(d.camels)
}

// Camels lists the pool in token order, for deterministic iteration.
func (d Dice) Camels() []Camel {
	camels := make([]Camel, 0, len(d.camels))
	for c := range d.camels {
		camels = append(camels, c)
	}
	sort.Slice(camels, func(i, j int) bool { return camels[i] < camels[j] })
	return camels
}

// Equal reports whether two pools contain the same camels.
func (d Dice) Equal(o Dice) bool {
	if len(d.camels) != len(o.camels) {
		return false
	}
	for c := range d.camels {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}
