package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Inset shrinks the rect by the given amount on each side.
// Negative values grow it.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	return Rect{
		Left:   r.Left + left,
		Top:    r.Top + top,
		Right:  r.Right - right,
		Bottom: r.Bottom - bottom,
	}
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{} // Empty
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// IsZero reports whether the radius has no extent on either axis.
func (r Radius) IsZero() bool {
	return r.X <= 0 || r.Y <= 0
}

// RRect represents a rounded rectangle with per-corner radii.
type RRect struct {
	Rect        Rect
	TopLeft     Radius
	TopRight    Radius
	BottomRight Radius
	BottomLeft  Radius
}

// RRectFromRectAndRadius creates a rounded rectangle with uniform corner radii.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	return RRect{
		Rect:        rect,
		TopLeft:     radius,
		TopRight:    radius,
		BottomRight: radius,
		BottomLeft:  radius,
	}
}

// RRectFromRectAndCorners creates a rounded rectangle with circular corners
// given in top-left, top-right, bottom-right, bottom-left order.
func RRectFromRectAndCorners(rect Rect, corners [4]float64) RRect {
	return RRect{
		Rect:        rect,
		TopLeft:     CircularRadius(corners[0]),
		TopRight:    CircularRadius(corners[1]),
		BottomRight: CircularRadius(corners[2]),
		BottomLeft:  CircularRadius(corners[3]),
	}
}

// UniformRadius returns a single radius value if all corners match, or 0 if not.
func (r RRect) UniformRadius() float64 {
	v := r.TopLeft.X
	if !floatEqual(r.TopLeft.Y, v) ||
		!floatEqual(r.TopRight.X, v) ||
		!floatEqual(r.TopRight.Y, v) ||
		!floatEqual(r.BottomRight.X, v) ||
		!floatEqual(r.BottomRight.Y, v) ||
		!floatEqual(r.BottomLeft.X, v) ||
		!floatEqual(r.BottomLeft.Y, v) {
		return 0
	}
	return v
}

// IsRect reports whether every corner is square.
func (r RRect) IsRect() bool {
	return r.TopLeft.IsZero() && r.TopRight.IsZero() &&
		r.BottomRight.IsZero() && r.BottomLeft.IsZero()
}

// Normalized returns the rounded rectangle with negative or NaN radii clamped
// to zero and, when adjacent radii along any side add up to more than that side's
// length, every radius scaled down by the same factor so the corners meet
// without overlapping.
func (r RRect) Normalized() RRect {
	clamp := func(v float64) float64 {
		switch {
		case math.IsNaN(v) || v < 0:
			return 0
		case math.IsInf(v, 1):
			return math.MaxFloat64
		}
		return v
	}
	out := RRect{
		Rect:        r.Rect,
		TopLeft:     Radius{X: clamp(r.TopLeft.X), Y: clamp(r.TopLeft.Y)},
		TopRight:    Radius{X: clamp(r.TopRight.X), Y: clamp(r.TopRight.Y)},
		BottomRight: Radius{X: clamp(r.BottomRight.X), Y: clamp(r.BottomRight.Y)},
		BottomLeft:  Radius{X: clamp(r.BottomLeft.X), Y: clamp(r.BottomLeft.Y)},
	}
	w, h := math.Max(r.Rect.Width(), 0), math.Max(r.Rect.Height(), 0)

	// The factor is kept as half-length over half-sum so two radii near
	// MaxFloat64 never overflow.
	num, den := 1.0, 1.0
	shrink := func(length, a, b float64) {
		half := a/2 + b/2
		if half <= length/2 {
			return
		}
		if (length/2)/half < num/den {
			num, den = length/2, half
		}
	}
	shrink(w, out.TopLeft.X, out.TopRight.X)
	shrink(w, out.BottomLeft.X, out.BottomRight.X)
	shrink(h, out.TopLeft.Y, out.BottomLeft.Y)
	shrink(h, out.TopRight.Y, out.BottomRight.Y)
	if num != den {
		for _, rad := range []*Radius{&out.TopLeft, &out.TopRight, &out.BottomRight, &out.BottomLeft} {
			rad.X = rad.X / den * num
			rad.Y = rad.Y / den * num
		}
	}
	return out
}

// Deflate insets the rect by per-side amounts and shrinks each corner radius
// by the widths of the two sides that meet at it, never below zero. Used to
// derive the inner edge of a border.
func (r RRect) Deflate(left, top, right, bottom float64) RRect {
	shrink := func(rad Radius, dx, dy float64) Radius {
		return Radius{X: math.Max(rad.X-dx, 0), Y: math.Max(rad.Y-dy, 0)}
	}
	return RRect{
		Rect:        r.Rect.Inset(left, top, right, bottom),
		TopLeft:     shrink(r.TopLeft, left, top),
		TopRight:    shrink(r.TopRight, right, top),
		BottomRight: shrink(r.BottomRight, right, bottom),
		BottomLeft:  shrink(r.BottomLeft, left, bottom),
	}
}

// Translate returns the rounded rect offset by (dx, dy).
func (r RRect) Translate(dx, dy float64) RRect {
	r.Rect = r.Rect.Translate(dx, dy)
	return r
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
