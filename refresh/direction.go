package refresh

import "strings"

// Direction identifies the edge a refresh gesture is pulled from.
type Direction uint8

const (
	// DirectionTop pulls down from the top edge.
	DirectionTop Direction = iota
	// DirectionBottom pulls up from the bottom edge.
	DirectionBottom
	// DirectionBoth is a configuration mode: each gesture resolves to Top or
	// Bottom from the first movement.
	DirectionBoth
)

// DirectionFromInt maps a configuration value to a Direction.
// Unknown values fall back to DirectionBoth.
func DirectionFromInt(n int) Direction {
	switch n {
	case 0:
		return DirectionTop
	case 1:
		return DirectionBottom
	default:
		return DirectionBoth
	}
}

// ParseDirection maps a name (top, bottom, both) to a Direction.
// Unknown names fall back to DirectionBoth.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return DirectionTop
	case "bottom":
		return DirectionBottom
	default:
		return DirectionBoth
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionTop:
		return "top"
	case DirectionBottom:
		return "bottom"
	default:
		return "both"
	}
}
