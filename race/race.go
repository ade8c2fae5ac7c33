package race

import (
	"errors"
	"strings"
)

// Structural rules a track must satisfy, checked in this order by ParseRace.
var (
	// ErrCamelInOasis rejects a camel directly adjacent to an oasis.
	ErrCamelInOasis = errors.New("race: camel cannot share a position with an oasis")
	// ErrCamelInMirage rejects a camel directly adjacent to a mirage.
	ErrCamelInMirage = errors.New("race: camel cannot share a position with a mirage")
	// ErrAdjustmentsSharePosition rejects two traps in the same position.
	ErrAdjustmentsSharePosition = errors.New("race: two traps cannot share a position")
	// ErrAdjacentAdjustments rejects traps in directly neighboring positions.
	ErrAdjacentAdjustments = errors.New("race: traps cannot occupy adjacent positions")
)

// Race is an ordered sequence of markers describing the track for one round.
//
// A race is always normalized: it spans exactly from the first camel to the
// last, so it never carries leading or trailing dividers, and traps outside
// the camel span are dropped. Two races are equal iff their normalized
// sequences are equal.
//
// Within one position, camels stack: sequence order is bottom to top, and a
// camel later in the sequence ranks ahead of every camel before it.
type Race struct {
	markers []Marker
}

// NewRace builds a normalized race from a marker sequence.
func NewRace(markers []Marker) Race {
	return Race{markers: normalize(markers)}
}

// ParseRace parses a race literal such as "gy,r,+,w".
//
// Tokenization errors surface as NotAMarkerError. Structural violations are
// reported in check order: camel-in-oasis, camel-in-mirage, traps sharing a
// position, traps in adjacent positions.
func ParseRace(input string) (Race, error) {
	markers := make([]Marker, 0, len(input))
	for _, token := range input {
		m, err := parseMarker(token)
		if err != nil {
			return Race{}, err
		}
		markers = append(markers, m)
	}

	for i := 0; i+1 < len(markers); i++ {
		l, r := markers[i], markers[i+1]
		if l.isCamel() && r.Kind == KindOasis || l.Kind == KindOasis && r.isCamel() {
			return Race{}, ErrCamelInOasis
		}
	}
	for i := 0; i+1 < len(markers); i++ {
		l, r := markers[i], markers[i+1]
		if l.isCamel() && r.Kind == KindMirage || l.Kind == KindMirage && r.isCamel() {
			return Race{}, ErrCamelInMirage
		}
	}
	for i := 0; i+1 < len(markers); i++ {
		if markers[i].isTrap() && markers[i+1].isTrap() {
			return Race{}, ErrAdjustmentsSharePosition
		}
	}
	for i := 0; i+2 < len(markers); i++ {
		if markers[i].isTrap() && markers[i+2].isTrap() {
			return Race{}, ErrAdjacentAdjustments
		}
	}

	return NewRace(markers), nil
}

// normalize trims a marker sequence to the span between the first and last
// camel. A sequence without camels normalizes to the empty race.
func normalize(markers []Marker) []Marker {
	first, last := -1, -1
	for i, m := range markers {
		if m.isCamel() {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return nil
	}
	normalized := make([]Marker, last-first+1)
	copy(normalized, markers[first:last+1])
	return normalized
}

// Markers returns a copy of the normalized marker sequence.
func (r Race) Markers() []Marker {
	markers := make([]Marker, len(r.markers))
	copy(markers, r.markers)
	return markers
}

// Equal reports whether two races have the same normalized marker sequence.
func (r Race) Equal(o Race) bool {
	if len(r.markers) != len(o.markers) {
		return false
	}
	for i := range r.markers {
		if r.markers[i] != o.markers[i] {
			return false
		}
	}
	return true
}

// String renders the race in its literal form.
func (r Race) String() string {
	var sb strings.Builder
	for _, m := range r.markers {
		sb.WriteRune(m.Token())
	}
	return sb.String()
}

// Contains reports whether the camel is present on the track.
func (r Race) Contains(c Camel) bool {
	for _, m := range r.markers {
		if m.isCamel() && m.Camel == c {
			return true
		}
	}
	return false
}

// Winner returns the camel at the front of the race. Normalization
// guarantees the most advanced, top-of-stack camel is last in the sequence.
// The bool is false when the race has no camels.
func (r Race) Winner() (Camel, bool) {
	return r.camelFromBack(0)
}

// RunnerUp returns the camel directly behind the winner. The bool is false
// when fewer than two camels race.
func (r Race) RunnerUp() (Camel, bool) {
	return r.camelFromBack(1)
}

// Loser returns the camel at the very back of the race. The bool is false
// when the race has no camels.
func (r Race) Loser() (Camel, bool) {
	camels := r.camels()
	if len(camels) == 0 {
		return 0, false
	}
	return camels[0], true
}

func (r Race) camelFromBack(n int) (Camel, bool) {
	camels := r.camels()
	if len(camels) <= n {
		return 0, false
	}
	return camels[len(camels)-1-n], true
}

// camels lists the camels in sequence order, back of the race first.
func (r Race) camels() []Camel {
	var camels []Camel
	for _, m := range r.markers {
		if m.isCamel() {
			camels = append(camels, m.Camel)
		}
	}
	return camels
}
