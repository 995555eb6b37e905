package graphics

import "fmt"

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	// A point is inside if a ray from it crosses more left-to-right edges
	// than right-to-left edges (or vice versa).
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	// Useful for creating holes: nested shapes alternate between filled/unfilled.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods.
// Use with Canvas.DrawPath to stroke/fill, or Canvas.ClipPath to clip.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// NewPathWithFillRule creates a new empty path with the specified fill rule.
func NewPathWithFillRule(fillRule PathFillRule) *Path {
	return &Path{FillRule: fillRule}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// kappa places cubic control points so a quarter arc approximates a circle.
const kappa = 0.5522847498

// AddRect appends a closed rectangle, clockwise from the top-left corner.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddRRect appends a closed rounded rectangle, clockwise from the end of the
// top-left arc. Radii are used as given; call [RRect.Normalized] first when
// they may overlap.
func (p *Path) AddRRect(rr RRect) {
	r := rr.Rect
	tl, tr, br, bl := rr.TopLeft, rr.TopRight, rr.BottomRight, rr.BottomLeft
	if tl.IsZero() {
		tl = Radius{}
	}
	if tr.IsZero() {
		tr = Radius{}
	}
	if br.IsZero() {
		br = Radius{}
	}
	if bl.IsZero() {
		bl = Radius{}
	}

	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	if tr != (Radius{}) {
		p.CubicTo(
			r.Right-tr.X+kappa*tr.X, r.Top,
			r.Right, r.Top+tr.Y-kappa*tr.Y,
			r.Right, r.Top+tr.Y,
		)
	}
	p.LineTo(r.Right, r.Bottom-br.Y)
	if br != (Radius{}) {
		p.CubicTo(
			r.Right, r.Bottom-br.Y+kappa*br.Y,
			r.Right-br.X+kappa*br.X, r.Bottom,
			r.Right-br.X, r.Bottom,
		)
	}
	p.LineTo(r.Left+bl.X, r.Bottom)
	if bl != (Radius{}) {
		p.CubicTo(
			r.Left+bl.X-kappa*bl.X, r.Bottom,
			r.Left, r.Bottom-bl.Y+kappa*bl.Y,
			r.Left, r.Bottom-bl.Y,
		)
	}
	p.LineTo(r.Left, r.Top+tl.Y)
	if tl != (Radius{}) {
		p.CubicTo(
			r.Left, r.Top+tl.Y-kappa*tl.Y,
			r.Left+tl.X-kappa*tl.X, r.Top,
			r.Left+tl.X, r.Top,
		)
	}
	p.Close()
}

// AddPolygon appends a closed polygon through the given points.
// Fewer than three points add nothing.
func (p *Path) AddPolygon(points ...Offset) {
	if len(points) < 3 {
		return
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// ClipOp selects how a clip path combines with the current clip.
type ClipOp int

const (
	// ClipOpIntersect keeps only the area inside both the clip and the path.
	ClipOpIntersect ClipOp = iota
	// ClipOpDifference removes the path's area from the current clip.
	ClipOpDifference
)

// String returns a human-readable representation of the clip operation.
func (o ClipOp) String() string {
	switch o {
	case ClipOpIntersect:
		return "intersect"
	case ClipOpDifference:
		return "difference"
	default:
		return fmt.Sprintf("ClipOp(%d)", int(o))
	}
}
