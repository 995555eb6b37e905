// Package border resolves corner radii and per-edge border styles for image
// views and paints the resulting border.
//
// All lengths stored here are in device-independent units. They are converted
// to pixels with a [layout.UnitConverter] only when an outline or border is
// built for drawing, so direction and precedence resolution never depend on
// screen density.
//
// Corner radii have nine slots (see [Corner]): a uniform value, four physical
// corners and four logical start/end corners. For each physical corner the
// resolved radius is the first defined of
//
//	physical corner > start/end corner for the current direction > uniform > 0
//
// Edges follow the same idea with nine slots (see [Edge]) and an extra
// horizontal/vertical level between the logical and the uniform slot.
package border

import (
	"math"
	"strconv"
)

// Value is an optional length. The zero value is [Undefined].
type Value struct {
	v  float64
	ok bool
}

// Undefined is the absent value. Resolution falls through to the next slot.
var Undefined = Value{}

// Len returns a defined value. NaN yields [Undefined].
func Len(v float64) Value {
	if math.IsNaN(v) {
		return Undefined
	}
	return Value{v: v, ok: true}
}

// IsDefined reports whether the value holds a length.
func (v Value) IsDefined() bool {
	return v.ok
}

// Float returns the length, or 0 when undefined.
func (v Value) Float() float64 {
	return v.v
}

// Or returns the length, or def when undefined.
func (v Value) Or(def float64) float64 {
	if !v.ok {
		return def
	}
	return v.v
}

// Equal reports whether two values are the same. Two undefined values are
// equal; defined values compare exactly.
func (v Value) Equal(other Value) bool {
	if v.ok != other.ok {
		return false
	}
	return !v.ok || v.v == other.v
}

// Normalized maps defined negative lengths to [Undefined].
func (v Value) Normalized() Value {
	if v.ok && v.v < 0 {
		return Undefined
	}
	return v
}

func (v Value) String() string {
	if !v.ok {
		return "undefined"
	}
	return strconv.FormatFloat(v.v, 'g', -1, 64)
}
