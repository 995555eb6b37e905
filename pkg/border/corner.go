package border

import (
	"fmt"
	"math"

	"github.com/go-drift/imageview/pkg/errors"
	"github.com/go-drift/imageview/pkg/layout"
)

// Corner identifies one of the nine radius slots.
type Corner int

const (
	CornerAll Corner = iota
	CornerTopLeft
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
	CornerTopStart
	CornerTopEnd
	CornerBottomStart
	CornerBottomEnd

	cornerCount
)

var cornerNames = [cornerCount]string{
	"all", "topLeft", "topRight", "bottomRight", "bottomLeft",
	"topStart", "topEnd", "bottomStart", "bottomEnd",
}

// String returns a human-readable representation of the corner slot.
func (c Corner) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Corner(%d)", int(c))
	}
	return cornerNames[c]
}

// Valid reports whether c is one of the nine slots.
func (c Corner) Valid() bool {
	return c >= 0 && c < cornerCount
}

func checkCorner(op string, pos Corner) {
	if !pos.Valid() {
		errors.Invariantf(op, "corner position %d out of range [0, %d]", int(pos), int(cornerCount)-1)
	}
}

// equalCornersTolerance is the largest difference between two resolved radii
// that still counts as equal.
const equalCornersTolerance = 1e-3

// RadiusSet holds the nine corner radius slots in [Corner] order. The zero
// value has every slot undefined.
type RadiusSet [cornerCount]Value

// Set stores v at pos after mapping negatives to [Undefined] and reports
// whether the slot changed. An invalid position panics.
func (s *RadiusSet) Set(pos Corner, v Value) bool {
	checkCorner("border.RadiusSet.Set", pos)
	v = v.Normalized()
	if s[pos].Equal(v) {
		return false
	}
	s[pos] = v
	return true
}

// Get returns the slot at pos. An invalid position panics.
func (s *RadiusSet) Get(pos Corner) Value {
	checkCorner("border.RadiusSet.Get", pos)
	return s[pos]
}

// Resolve returns the radius of each physical corner in top-left, top-right,
// bottom-right, bottom-left order.
func (s *RadiusSet) Resolve(dir layout.TextDirection) [4]float64 {
	topLeft, topRight := s[CornerTopStart], s[CornerTopEnd]
	bottomLeft, bottomRight := s[CornerBottomStart], s[CornerBottomEnd]
	if dir.IsRTL() {
		topLeft, topRight = topRight, topLeft
		bottomLeft, bottomRight = bottomRight, bottomLeft
	}
	all := s[CornerAll]
	pick := func(values ...Value) float64 {
		for _, v := range values {
			if v.IsDefined() {
				return v.Float()
			}
		}
		return 0
	}
	return [4]float64{
		pick(s[CornerTopLeft], topLeft, all),
		pick(s[CornerTopRight], topRight, all),
		pick(s[CornerBottomRight], bottomRight, all),
		pick(s[CornerBottomLeft], bottomLeft, all),
	}
}

// EqualCorners reports whether the four radii are pairwise equal within a
// small tolerance.
func EqualCorners(corners [4]float64) bool {
	for i := 0; i < len(corners); i++ {
		for j := i + 1; j < len(corners); j++ {
			if math.Abs(corners[i]-corners[j]) > equalCornersTolerance {
				return false
			}
		}
	}
	return true
}
