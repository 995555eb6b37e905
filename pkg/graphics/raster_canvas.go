package graphics

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// RasterCanvas implements Canvas in software on top of an [image.RGBA].
//
// Shapes are scan-converted with golang.org/x/image/vector into alpha coverage
// masks and composited source-over. Clips are kept as a coverage mask in canvas
// space, so rounded and path clips are antialiased. Translation is the only
// supported transform. Strokes are supported for rects and rounded rects;
// DrawPath only fills.
type RasterCanvas struct {
	dst   *image.RGBA
	state rasterState
	stack []rasterState
}

type rasterState struct {
	dx, dy float64
	clip   *image.Alpha // nil means unclipped; never mutated once installed
}

// NewRasterCanvas returns a canvas drawing into dst.
func NewRasterCanvas(dst *image.RGBA) *RasterCanvas {
	return &RasterCanvas{dst: dst}
}

// NewRasterCanvasSize allocates a transparent RGBA image of the given pixel
// size and returns a canvas drawing into it.
func NewRasterCanvasSize(width, height int) *RasterCanvas {
	return NewRasterCanvas(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// Image returns the destination image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	path := NewPath()
	path.AddRect(rect)
	c.ClipPath(path, ClipOpIntersect, true)
}

func (c *RasterCanvas) ClipRRect(rrect RRect) {
	path := NewPath()
	path.AddRRect(rrect.Normalized())
	c.ClipPath(path, ClipOpIntersect, true)
}

func (c *RasterCanvas) ClipPath(path *Path, op ClipOp, antialias bool) {
	cov := c.coverage(path)
	if cov == nil {
		return
	}
	if !antialias {
		for i, v := range cov.Pix {
			if v >= 0x80 {
				cov.Pix[i] = 0xFF
			} else {
				cov.Pix[i] = 0
			}
		}
	}
	if op == ClipOpDifference {
		for i, v := range cov.Pix {
			cov.Pix[i] = 0xFF - v
		}
	}
	if c.state.clip != nil {
		cov = mulMask(cov, c.state.clip)
	}
	c.state.clip = cov
}

func (c *RasterCanvas) Clear(color Color) {
	b := c.dst.Bounds()
	src := image.NewUniform(color.NRGBA())
	if c.state.clip == nil {
		draw.Draw(c.dst, b, src, image.Point{}, draw.Src)
		return
	}
	// Erase under the clip first so partially covered pixels blend toward the
	// new color instead of the old one, and pixels outside stay untouched.
	w := b.Dx()
	for i, m := range c.state.clip.Pix {
		if m == 0 {
			continue
		}
		keep := uint32(0xFF - m)
		off := (i/w)*c.dst.Stride + (i%w)*4
		for k := 0; k < 4; k++ {
			c.dst.Pix[off+k] = uint8((uint32(c.dst.Pix[off+k])*keep + 0x7F) / 0xFF)
		}
	}
	draw.DrawMask(c.dst, b, src, image.Point{}, c.state.clip, image.Point{}, draw.Over)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	c.DrawRRect(RRect{Rect: rect}, paint)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	color := paint.EffectiveColor()
	if color.IsTransparent() {
		return
	}
	if paint.Style == PaintStyleFill || paint.Style == PaintStyleFillAndStroke {
		path := NewPath()
		path.AddRRect(rrect.Normalized())
		c.fill(c.coverage(path), color)
	}
	if (paint.Style == PaintStyleStroke || paint.Style == PaintStyleFillAndStroke) && paint.StrokeWidth > 0 {
		half := paint.StrokeWidth / 2
		path := NewPathWithFillRule(FillRuleEvenOdd)
		path.AddRRect(outsetRRect(rrect, half).Normalized())
		if inner := rrect.Deflate(half, half, half, half); !inner.Rect.IsEmpty() {
			path.AddRRect(inner.Normalized())
		}
		c.fill(c.coverage(path), color)
	}
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if paint.Style == PaintStyleStroke {
		return
	}
	color := paint.EffectiveColor()
	if color.IsTransparent() {
		return
	}
	c.fill(c.coverage(path), color)
}

func (c *RasterCanvas) DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality) {
	if img == nil || dstRect.IsEmpty() {
		return
	}
	sb := img.Bounds()
	if srcRect == (Rect{}) {
		srcRect = RectFromLTWH(0, 0, float64(sb.Dx()), float64(sb.Dy()))
	}
	if srcRect.IsEmpty() {
		return
	}
	sr := image.Rect(
		int(math.Floor(srcRect.Left))+sb.Min.X,
		int(math.Floor(srcRect.Top))+sb.Min.Y,
		int(math.Ceil(srcRect.Right))+sb.Min.X,
		int(math.Ceil(srcRect.Bottom))+sb.Min.Y,
	).Intersect(sb)
	if sr.Empty() {
		return
	}

	b := c.dst.Bounds()
	sx := dstRect.Width() / srcRect.Width()
	sy := dstRect.Height() / srcRect.Height()
	tx := dstRect.Left + c.state.dx + float64(b.Min.X) - sx*(srcRect.Left+float64(sb.Min.X))
	ty := dstRect.Top + c.state.dy + float64(b.Min.Y) - sy*(srcRect.Top+float64(sb.Min.Y))
	s2d := f64.Aff3{sx, 0, tx, 0, sy, ty}

	var opts *draw.Options
	if c.state.clip != nil {
		opts = &draw.Options{
			DstMask:  c.state.clip,
			DstMaskP: image.Point{X: -b.Min.X, Y: -b.Min.Y},
		}
	}
	transformer(quality).Transform(c.dst, s2d, img, sr, draw.Over, opts)
}

func (c *RasterCanvas) DrawRRectShadow(rrect RRect, shadow BoxShadow) {
	if shadow.Color.IsTransparent() {
		return
	}
	path := NewPath()
	path.AddRRect(shadow.Bounds(rrect).Normalized())
	cov := c.coverage(path)
	if cov == nil {
		return
	}
	boxBlur(cov, int(math.Ceil(shadow.Sigma()*2)))
	switch shadow.BlurStyle {
	case BlurStyleOuter:
		shape := NewPath()
		shape.AddRRect(rrect.Normalized())
		if inside := c.coverage(shape); inside != nil {
			for i, v := range inside.Pix {
				inside.Pix[i] = 0xFF - v
			}
			cov = mulMask(cov, inside)
		}
	case BlurStyleInner:
		shape := NewPath()
		shape.AddRRect(rrect.Normalized())
		if inside := c.coverage(shape); inside != nil {
			for i, v := range cov.Pix {
				cov.Pix[i] = 0xFF - v
			}
			cov = mulMask(cov, inside)
		}
	}
	c.fill(cov, shadow.Color)
}

func (c *RasterCanvas) Size() Size {
	b := c.dst.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// fill composites color through cov, restricted to the current clip.
func (c *RasterCanvas) fill(cov *image.Alpha, color Color) {
	if cov == nil {
		return
	}
	if c.state.clip != nil {
		cov = mulMask(cov, c.state.clip)
	}
	draw.DrawMask(c.dst, c.dst.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, cov, image.Point{}, draw.Over)
}

// coverage scan-converts path into a mask covering the destination, in
// canvas space with the current translation applied. Returns nil for an
// empty destination or path.
func (c *RasterCanvas) coverage(path *Path) *image.Alpha {
	b := c.dst.Bounds()
	if path == nil || path.IsEmpty() || b.Empty() {
		return nil
	}
	if path.FillRule != FillRuleEvenOdd {
		return c.rasterize(path.Commands)
	}
	// x/image/vector accumulates winding, so even-odd is built by xor-ing the
	// coverage of each subpath.
	var out *image.Alpha
	for _, sub := range subpaths(path.Commands) {
		cov := c.rasterize(sub)
		if out == nil {
			out = cov
			continue
		}
		for i, v := range cov.Pix {
			a, b := int(out.Pix[i]), int(v)
			out.Pix[i] = uint8(clampInt(a+b-2*a*b/0xFF, 0, 0xFF))
		}
	}
	return out
}

func (c *RasterCanvas) rasterize(cmds []PathCommand) *image.Alpha {
	b := c.dst.Bounds()
	w, h := b.Dx(), b.Dy()
	z := vector.NewRasterizer(w, h)
	ox, oy := c.state.dx, c.state.dy
	x := func(v float64) float32 { return float32(v + ox) }
	y := func(v float64) float32 { return float32(v + oy) }
	open := false
	for _, cmd := range cmds {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(x(a[0]), y(a[1]))
			open = true
		case PathOpLineTo:
			z.LineTo(x(a[0]), y(a[1]))
		case PathOpQuadTo:
			z.QuadTo(x(a[0]), y(a[1]), x(a[2]), y(a[3]))
		case PathOpCubicTo:
			z.CubeTo(x(a[0]), y(a[1]), x(a[2]), y(a[3]), x(a[4]), y(a[5]))
		case PathOpClose:
			if open {
				z.ClosePath()
			}
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// subpaths splits commands at each MoveTo.
func subpaths(cmds []PathCommand) [][]PathCommand {
	var out [][]PathCommand
	start := 0
	for i, cmd := range cmds {
		if cmd.Op == PathOpMoveTo && i > start {
			out = append(out, cmds[start:i])
			start = i
		}
	}
	if start < len(cmds) {
		out = append(out, cmds[start:])
	}
	return out
}

// outsetRRect grows the rect by d on every side. Rounded corners grow with
// it; square corners stay square.
func outsetRRect(rr RRect, d float64) RRect {
	grow := func(r Radius) Radius {
		if r.IsZero() {
			return Radius{}
		}
		return Radius{X: r.X + d, Y: r.Y + d}
	}
	return RRect{
		Rect:        rr.Rect.Inset(-d, -d, -d, -d),
		TopLeft:     grow(rr.TopLeft),
		TopRight:    grow(rr.TopRight),
		BottomRight: grow(rr.BottomRight),
		BottomLeft:  grow(rr.BottomLeft),
	}
}

func transformer(q FilterQuality) draw.Transformer {
	switch q {
	case FilterQualityNone:
		return draw.NearestNeighbor
	case FilterQualityMedium:
		return draw.BiLinear
	case FilterQualityHigh:
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}

// mulMask returns the per-pixel product of two same-sized masks.
func mulMask(a, b *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Rect)
	for i := range out.Pix {
		out.Pix[i] = uint8((uint32(a.Pix[i])*uint32(b.Pix[i]) + 0x7F) / 0xFF)
	}
	return out
}

// boxBlur blurs m in place with a separable box filter of the given radius.
func boxBlur(m *image.Alpha, radius int) {
	if radius <= 0 {
		return
	}
	w, h := m.Rect.Dx(), m.Rect.Dy()
	window := 2*radius + 1
	blur := func(n int, get func(int) uint8, set func(int, uint8)) {
		prefix := make([]int, n+1)
		for i := 0; i < n; i++ {
			prefix[i+1] = prefix[i] + int(get(i))
		}
		for i := 0; i < n; i++ {
			lo, hi := max(i-radius, 0), min(i+radius+1, n)
			set(i, uint8((prefix[hi]-prefix[lo])/window))
		}
	}
	for row := 0; row < h; row++ {
		off := row * m.Stride
		blur(w,
			func(i int) uint8 { return m.Pix[off+i] },
			func(i int, v uint8) { m.Pix[off+i] = v })
	}
	col := make([]uint8, h)
	for x := 0; x < w; x++ {
		for row := 0; row < h; row++ {
			col[row] = m.Pix[row*m.Stride+x]
		}
		blur(h,
			func(i int) uint8 { return col[i] },
			func(i int, v uint8) { m.Pix[i*m.Stride+x] = v })
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
