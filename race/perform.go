package race

// Face is one side of a camel die. Its value is the number of positions the
// camel's stack advances.
type Face int

const (
	One Face = iota + 1
	Two
	Three
)

// Faces returns all three faces in order.
func Faces() []Face {
	return []Face{One, Two, Three}
}

// Steps returns the number of positions the face moves a stack.
func (f Face) Steps() int {
	return int(f)
}

// Roll is a single die outcome: which camel moves, and how far.
type Roll struct {
	Camel Camel
	Face  Face
}

// sentinelDividers is appended past the end of the track while counting
// forward, so a stack can always find its destination slot. A face moves at
// most three positions and an oasis adds one more.
const sentinelDividers = 5

// Perform applies one die roll and returns the resulting race.
//
// The rolled camel carries every camel stacked directly on top of it. The
// stack counts forward one position per step on the face. Landing on an
// oasis moves it one further position, on top of any stack there. Landing
// on a mirage pulls it back one position, underneath any stack there.
// Rolling a camel that is not in the race leaves it unchanged.
func (r Race) Perform(roll Roll) Race {
	start := -1
	for i, m := range r.markers {
		if m.isCamel() && m.Camel == roll.Camel {
			start = i
			break
		}
	}
	if start < 0 {
		return NewRace(r.markers)
	}

	end := start
	for end < len(r.markers) && r.markers[end].isCamel() {
		end++
	}
	stack := r.markers[start:end]

	remaining := make([]Marker, 0, len(r.markers)+sentinelDividers)
	remaining = append(remaining, r.markers[:start]...)
	remaining = append(remaining, r.markers[end:]...)
	for i := 0; i < sentinelDividers; i++ {
		remaining = append(remaining, DividerMarker())
	}

	// Divider offsets relative to the stack's original position. Offset
	// dividers[k] closes slot k, counting the origin slot as slot zero.
	var dividers []int
	for i := start; i < len(remaining); i++ {
		if remaining[i].isDivider() {
			dividers = append(dividers, i-start)
		}
	}

	steps := roll.Face.Steps()
	insert := start + dividers[steps]
	// A slot holds either camels or a single trap, so the marker right
	// before the closing divider tells us what the stack lands on.
	switch remaining[start+dividers[steps]-1].Kind {
	case KindOasis:
		insert = start + dividers[steps+1]
	case KindMirage:
		insert = slotStart(remaining, start, dividers, steps-1)
	}

	result := make([]Marker, 0, len(remaining)+len(stack))
	result = append(result, remaining[:insert]...)
	result = append(result, stack...)
	result = append(result, remaining[insert:]...)
	return NewRace(result)
}

// slotStart finds the insertion index for landing underneath slot k. For
// slot zero that is the start of the origin slot, behind any camels the
// moved stack was standing on.
func slotStart(remaining []Marker, start int, dividers []int, k int) int {
	if k > 0 {
		return start + dividers[k-1] + 1
	}
	i := start
	for i > 0 && !remaining[i-1].isDivider() {
		i--
	}
	return i
}
