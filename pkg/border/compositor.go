package border

import (
	"math"

	"github.com/go-drift/imageview/pkg/graphics"
	"github.com/go-drift/imageview/pkg/layout"
)

// Compositor paints a border whose width and color may differ per edge.
//
// Widths default to 0. Colors are stored as separate RGB and alpha slots so
// an edge may override one without the other; they default to opaque black.
// Mutators only report whether anything changed. Scheduling a repaint is up
// to the caller.
type Compositor struct {
	widths EdgeSet
	rgb    EdgeSet
	alpha  EdgeSet
	radii  RadiusSet
}

// NewCompositor returns a compositor with no visible border.
func NewCompositor() *Compositor {
	return &Compositor{
		widths: NewEdgeSet(0),
		rgb:    NewEdgeSet(0x000000),
		alpha:  NewEdgeSet(0xFF),
	}
}

// SetWidth stores a border width in device-independent units and reports
// whether it changed. Negative widths are stored as [Undefined].
func (c *Compositor) SetWidth(pos Edge, w Value) bool {
	checkEdge("border.Compositor.SetWidth", pos)
	return c.widths.Set(pos, w.Normalized())
}

// Width returns the stored width slot at pos.
func (c *Compositor) Width(pos Edge) Value {
	return c.widths.Get(pos)
}

// SetColor stores the RGB (0xRRGGBB) and alpha (0-255) components of an edge
// color and reports whether either changed.
func (c *Compositor) SetColor(pos Edge, rgb, alpha Value) bool {
	checkEdge("border.Compositor.SetColor", pos)
	changed := c.rgb.Set(pos, rgb)
	if c.alpha.Set(pos, alpha) {
		changed = true
	}
	return changed
}

// SetColorARGB splits a packed color into its RGB and alpha slots. A nil
// color clears both.
func (c *Compositor) SetColorARGB(pos Edge, color *graphics.Color) bool {
	if color == nil {
		return c.SetColor(pos, Undefined, Undefined)
	}
	return c.SetColor(pos, Len(float64(color.RGB())), Len(float64(color.Alpha8())))
}

// Color returns the stored RGB and alpha slots at pos.
func (c *Compositor) Color(pos Edge) (rgb, alpha Value) {
	return c.rgb.Get(pos), c.alpha.Get(pos)
}

// SetRadius stores a corner radius in device-independent units and reports
// whether it changed. Negative values are stored as [Undefined].
func (c *Compositor) SetRadius(v Value, pos Corner) bool {
	checkCorner("border.Compositor.SetRadius", pos)
	return c.radii.Set(pos, v)
}

// SetRadii replaces every radius slot and reports whether any changed.
func (c *Compositor) SetRadii(radii RadiusSet) bool {
	changed := false
	for pos, v := range radii {
		if c.radii.Set(Corner(pos), v) {
			changed = true
		}
	}
	return changed
}

// Widths returns the resolved width of each physical edge.
func (c *Compositor) Widths(dir layout.TextDirection) Edges {
	return c.widths.Resolve(dir)
}

// Colors returns the resolved color of each physical edge in left, top,
// right, bottom order.
func (c *Compositor) Colors(dir layout.TextDirection) [4]graphics.Color {
	rgb := c.rgb.Resolve(dir)
	alpha := c.alpha.Resolve(dir)
	return [4]graphics.Color{
		edgeColor(rgb.Left, alpha.Left),
		edgeColor(rgb.Top, alpha.Top),
		edgeColor(rgb.Right, alpha.Right),
		edgeColor(rgb.Bottom, alpha.Bottom),
	}
}

// IsVisible reports whether any edge would paint.
func (c *Compositor) IsVisible(dir layout.TextDirection) bool {
	w := c.Widths(dir)
	colors := c.Colors(dir)
	for i, width := range [4]float64{w.Left, w.Top, w.Right, w.Bottom} {
		if width > 0 && !colors[i].IsTransparent() {
			return true
		}
	}
	return false
}

// Draw paints the border inside bounds. Widths and radii are resolved for
// dir and converted to pixels with units.
//
// A border with the same width and color on every edge is a single ring
// between the outer outline and the inset inner outline. Otherwise the ring
// is used as a clip and each edge fills a trapezoid reaching to the inner
// corners, so adjacent colors meet on the corner diagonals.
func (c *Compositor) Draw(canvas graphics.Canvas, bounds graphics.Rect, dir layout.TextDirection, units layout.UnitConverter) {
	if bounds.IsEmpty() || !c.IsVisible(dir) {
		return
	}
	w := c.Widths(dir).Scale(units)
	colors := c.Colors(dir)
	outer := graphics.RRectFromRectAndCorners(bounds, cornersToPixels(c.radii.Resolve(dir), units)).Normalized()
	inner := outer.Deflate(w.Left, w.Top, w.Right, w.Bottom)

	if w.IsUniform() && colors[0] == colors[1] && colors[1] == colors[2] && colors[2] == colors[3] {
		ring := graphics.NewPathWithFillRule(graphics.FillRuleEvenOdd)
		addOutline(ring, outer)
		if !inner.Rect.IsEmpty() {
			addOutline(ring, inner)
		}
		canvas.DrawPath(ring, graphics.FillPaint(colors[0]))
		return
	}

	canvas.Save()
	defer canvas.Restore()
	canvas.ClipRRect(outer)
	if !inner.Rect.IsEmpty() {
		hole := graphics.NewPath()
		addOutline(hole, inner)
		canvas.ClipPath(hole, graphics.ClipOpDifference, true)
	}

	o := bounds
	// Inner corners are clamped so opposite edges wider than the box still
	// produce convex quads.
	innerLeft := math.Min(o.Left+w.Left, o.Right)
	innerRight := math.Max(o.Right-w.Right, innerLeft)
	innerTop := math.Min(o.Top+w.Top, o.Bottom)
	innerBottom := math.Max(o.Bottom-w.Bottom, innerTop)

	quads := [4][4]graphics.Offset{
		{{X: o.Left, Y: o.Top}, {X: innerLeft, Y: innerTop}, {X: innerLeft, Y: innerBottom}, {X: o.Left, Y: o.Bottom}},
		{{X: o.Left, Y: o.Top}, {X: o.Right, Y: o.Top}, {X: innerRight, Y: innerTop}, {X: innerLeft, Y: innerTop}},
		{{X: o.Right, Y: o.Top}, {X: o.Right, Y: o.Bottom}, {X: innerRight, Y: innerBottom}, {X: innerRight, Y: innerTop}},
		{{X: o.Left, Y: o.Bottom}, {X: innerLeft, Y: innerBottom}, {X: innerRight, Y: innerBottom}, {X: o.Right, Y: o.Bottom}},
	}
	for i, width := range [4]float64{w.Left, w.Top, w.Right, w.Bottom} {
		if width <= 0 || colors[i].IsTransparent() {
			continue
		}
		quad := graphics.NewPath()
		quad.AddPolygon(quads[i][:]...)
		canvas.DrawPath(quad, graphics.FillPaint(colors[i]))
	}
}

func addOutline(p *graphics.Path, rr graphics.RRect) {
	if rr.IsRect() {
		p.AddRect(rr.Rect)
		return
	}
	p.AddRRect(rr)
}

func edgeColor(rgb, alpha float64) graphics.Color {
	a := math.Max(0, math.Min(255, math.Round(alpha)))
	return graphics.ColorFromRGBAndAlpha(uint32(rgb)&0xFFFFFF, uint8(a))
}
