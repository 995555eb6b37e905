package layout

import "fmt"

// TextDirection is the reading direction that logical start/end positions
// resolve against.
type TextDirection int

const (
	// TextDirectionLTR maps start to left and end to right.
	TextDirectionLTR TextDirection = iota
	// TextDirectionRTL maps start to right and end to left.
	TextDirectionRTL
)

// String returns a human-readable representation of the direction.
func (d TextDirection) String() string {
	switch d {
	case TextDirectionLTR:
		return "ltr"
	case TextDirectionRTL:
		return "rtl"
	default:
		return fmt.Sprintf("TextDirection(%d)", int(d))
	}
}

// IsRTL reports whether the direction is right-to-left.
func (d TextDirection) IsRTL() bool {
	return d == TextDirectionRTL
}

// ParseTextDirection parses "ltr" or "rtl".
func ParseTextDirection(s string) (TextDirection, error) {
	switch s {
	case "ltr", "LTR":
		return TextDirectionLTR, nil
	case "rtl", "RTL":
		return TextDirectionRTL, nil
	default:
		return TextDirectionLTR, fmt.Errorf("unknown text direction %q", s)
	}
}

// DirectionProvider reports the current layout direction. It is queried at
// paint time, so implementations may change their answer between frames.
type DirectionProvider interface {
	IsRightToLeft() bool
}

// FixedDirection is a DirectionProvider that always reports the same direction.
type FixedDirection TextDirection

// IsRightToLeft implements DirectionProvider.
func (d FixedDirection) IsRightToLeft() bool {
	return TextDirection(d) == TextDirectionRTL
}

// ResolveDirection queries p, treating a nil provider as left-to-right.
func ResolveDirection(p DirectionProvider) TextDirection {
	if p != nil && p.IsRightToLeft() {
		return TextDirectionRTL
	}
	return TextDirectionLTR
}
