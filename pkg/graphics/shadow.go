package graphics

import "fmt"

// BlurStyle controls how the blur mask is generated.
type BlurStyle int

const (
	// BlurStyleOuter draws nothing inside, blurs outside only.
	BlurStyleOuter BlurStyle = iota
	// BlurStyleNormal blurs inside and outside the shape.
	BlurStyleNormal
	// BlurStyleSolid keeps the shape solid inside, blurs outside.
	BlurStyleSolid
	// BlurStyleInner blurs inside the shape only, nothing outside.
	BlurStyleInner
)

// String returns a human-readable representation of the blur style.
func (s BlurStyle) String() string {
	switch s {
	case BlurStyleOuter:
		return "outer"
	case BlurStyleNormal:
		return "normal"
	case BlurStyleSolid:
		return "solid"
	case BlurStyleInner:
		return "inner"
	default:
		return fmt.Sprintf("BlurStyle(%d)", int(s))
	}
}

// BoxShadow defines a shadow to draw around a shape.
//
// BlurStyle controls where the shadow appears relative to the shape.
//
// Spread controls the shadow's extent relative to the shape:
// - Outer/Normal/Solid: positive spread expands the shadow outward.
// - Inner: positive spread moves the inner edge inward, thickening the band.
//
// BlurRadius controls softness; the blur sigma is BlurRadius * 0.5.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64 // sigma = blurRadius * 0.5
	Spread     float64
	BlurStyle  BlurStyle
}

// Sigma returns the Gaussian blur sigma.
// Returns 0 if BlurRadius is negative.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// ElevationShadow returns the ambient drop shadow cast by a surface raised
// by elevation pixels. The shadow falls straight down by half the elevation
// and blurs over the full elevation; zero or negative elevation casts none.
func ElevationShadow(elevation float64) (BoxShadow, bool) {
	if elevation <= 0 {
		return BoxShadow{}, false
	}
	return BoxShadow{
		Color:      RGBA8(0, 0, 0, 0x3D),
		Offset:     Offset{X: 0, Y: elevation * 0.5},
		BlurRadius: elevation,
		BlurStyle:  BlurStyleOuter,
	}, true
}

// Bounds returns the rounded rect covered by the shadow before blurring.
func (s BoxShadow) Bounds(rrect RRect) RRect {
	grow := func(r Radius) Radius {
		if r.IsZero() {
			return r
		}
		return Radius{X: r.X + s.Spread, Y: r.Y + s.Spread}
	}
	return RRect{
		Rect:        rrect.Rect.Inset(-s.Spread, -s.Spread, -s.Spread, -s.Spread).Translate(s.Offset.X, s.Offset.Y),
		TopLeft:     grow(rrect.TopLeft),
		TopRight:    grow(rrect.TopRight),
		BottomRight: grow(rrect.BottomRight),
		BottomLeft:  grow(rrect.BottomLeft),
	}
}
