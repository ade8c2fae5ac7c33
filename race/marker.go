package race

import "fmt"

// MarkerKind discriminates the marker variants.
type MarkerKind int

const (
	// KindCamel marks a camel standing at a position.
	KindCamel MarkerKind = iota
	// KindDivider is the boundary between two positions.
	KindDivider
	// KindOasis advances a stack one position when it lands there.
	KindOasis
	// KindMirage pulls a landing stack back one position, underneath
	// whatever already stands there.
	KindMirage
)

// Marker is one symbol on the track: a camel, a position divider, or one of
// the two trap tiles. The Camel field is only meaningful for KindCamel.
type Marker struct {
	Kind  MarkerKind
	Camel Camel
}

// CamelMarker returns a marker for the given camel.
func CamelMarker(c Camel) Marker {
	return Marker{Kind: KindCamel, Camel: c}
}

// DividerMarker returns a position boundary marker.
func DividerMarker() Marker {
	return Marker{Kind: KindDivider}
}

// OasisMarker returns an oasis trap marker.
func OasisMarker() Marker {
	return Marker{Kind: KindOasis}
}

// MirageMarker returns a mirage trap marker.
func MirageMarker() Marker {
	return Marker{Kind: KindMirage}
}

func (m Marker) isCamel() bool   { return m.Kind == KindCamel }
func (m Marker) isDivider() bool { return m.Kind == KindDivider }

// isTrap reports whether the marker adjusts a landing stack.
func (m Marker) isTrap() bool {
	return m.Kind == KindOasis || m.Kind == KindMirage
}

// Token returns the single-character literal for the marker.
func (m Marker) Token() rune {
	switch m.Kind {
	case KindCamel:
		return m.Camel.Token()
	case KindDivider:
		return ','
	case KindOasis:
		return '+'
	case KindMirage:
		return '-'
	default:
		return '?'
	}
}

// NotAMarkerError reports a token that does not map to any marker.
type NotAMarkerError struct {
	Token rune
}

func (e NotAMarkerError) Error() string {
	return fmt.Sprintf("not a marker: %q", e.Token)
}

// parseMarker maps a single token to its marker.
func parseMarker(token rune) (Marker, error) {
	switch token {
	case 'r':
		return CamelMarker(Red), nil
	case 'o':
		return CamelMarker(Orange), nil
	case 'y':
		return CamelMarker(Yellow), nil
	case 'g':
		return CamelMarker(Green), nil
	case 'w':
		return CamelMarker(White), nil
	case ',':
		return DividerMarker(), nil
	case '+':
		return OasisMarker(), nil
	case '-':
		return MirageMarker(), nil
	default:
		return Marker{}, NotAMarkerError{Token: token}
	}
}
