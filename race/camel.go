// Package race models a single round of the camel racing board game: the
// track as an ordered sequence of markers, the dice pool for the round, and
// the transition of applying one die roll to the track.
//
// Races and dice pools have a compact textual form, one character per marker:
// the camels are r, o, y, g and w, a comma is a position divider, + is an
// oasis and - is a mirage. "r,,y" is red, two empty positions, then yellow.
package race

// Camel identifies one of the five racing camels.
type Camel int

const (
	Red Camel = iota
	Orange
	Yellow
	Green
	White
)

// Camels returns all five camels in token order.
func Camels() []Camel {
	return []Camel{Red, Orange, Yellow, Green, White}
}

// Token returns the single-character literal for the camel.
func (c Camel) Token() rune {
	switch c {
	case Red:
		return 'r'
	case Orange:
		return 'o'
	case Yellow:
		return 'y'
	case Green:
		return 'g'
	case White:
		return 'w'
	default:
		return '?'
	}
}

// String returns the camel's name.
func (c Camel) String() string {
	switch c {
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case White:
		return "white"
	default:
		return "unknown"
	}
}
