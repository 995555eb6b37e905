package border

import (
	"github.com/go-drift/imageview/pkg/graphics"
	"github.com/go-drift/imageview/pkg/layout"
)

// Resolver turns the nine radius slots into four physical corner radii for the
// current direction and builds the matching outline for clipping.
//
// Resolved corners are recomputed whenever a slot or the direction changes.
// The pixel-space outline is rebuilt on the next request after any change and
// cached otherwise.
type Resolver struct {
	radii   RadiusSet
	dir     layout.TextDirection
	corners [4]float64

	outline outlineCache
}

type outlineCache struct {
	valid  bool
	bounds graphics.Rect
	px     [4]float64
	rrect  graphics.RRect
	path   *graphics.Path
}

// NewResolver returns a resolver with every slot undefined, resolving
// left-to-right.
func NewResolver() *Resolver {
	return &Resolver{}
}

// SetRadius stores v in slot pos and reports whether the stored slot changed.
// Negative values are stored as [Undefined]. An invalid position panics with
// an [errors.InvariantError].
func (r *Resolver) SetRadius(v Value, pos Corner) bool {
	checkCorner("border.Resolver.SetRadius", pos)
	if !r.radii.Set(pos, v) {
		return false
	}
	r.recompute()
	return true
}

// SetDirection changes the direction start and end slots resolve against and
// reports whether the resolved corners changed. Stored slots are untouched.
func (r *Resolver) SetDirection(dir layout.TextDirection) bool {
	if r.dir == dir {
		return false
	}
	r.dir = dir
	prev := r.corners
	r.recompute()
	return prev != r.corners
}

// Direction returns the direction corners are currently resolved against.
func (r *Resolver) Direction() layout.TextDirection {
	return r.dir
}

// Radius returns the stored slot at pos. An invalid position panics.
func (r *Resolver) Radius(pos Corner) Value {
	checkCorner("border.Resolver.Radius", pos)
	return r.radii[pos]
}

// Radii returns a copy of all nine slots.
func (r *Resolver) Radii() RadiusSet {
	return r.radii
}

// BorderRadii returns the resolved radii in top-left, top-right,
// bottom-right, bottom-left order, in device-independent units.
func (r *Resolver) BorderRadii() [4]float64 {
	return r.corners
}

// HasEqualCorners reports whether the four resolved radii are equal.
func (r *Resolver) HasEqualCorners() bool {
	return EqualCorners(r.corners)
}

// Outline returns the rounded rectangle covering bounds with the resolved
// radii converted to pixels. Radii that would overlap along a side are
// scaled down together.
func (r *Resolver) Outline(bounds graphics.Rect, units layout.UnitConverter) graphics.RRect {
	r.ensureOutline(bounds, units)
	return r.outline.rrect
}

// ClipPath returns the outline as a path. The returned path is shared with
// the cache and must not be modified.
func (r *Resolver) ClipPath(bounds graphics.Rect, units layout.UnitConverter) *graphics.Path {
	r.ensureOutline(bounds, units)
	return r.outline.path
}

func (r *Resolver) recompute() {
	r.corners = r.radii.Resolve(r.dir)
	r.outline.valid = false
}

func (r *Resolver) ensureOutline(bounds graphics.Rect, units layout.UnitConverter) {
	px := cornersToPixels(r.corners, units)
	c := &r.outline
	if c.valid && c.bounds == bounds && c.px == px {
		return
	}
	c.bounds = bounds
	c.px = px
	c.rrect = graphics.RRectFromRectAndCorners(bounds, px).Normalized()
	c.path = graphics.NewPath()
	if c.rrect.IsRect() {
		c.path.AddRect(bounds)
	} else {
		c.path.AddRRect(c.rrect)
	}
	c.valid = true
}

func cornersToPixels(corners [4]float64, units layout.UnitConverter) [4]float64 {
	var px [4]float64
	for i, v := range corners {
		px[i] = layout.ToPixels(units, v)
	}
	return px
}
