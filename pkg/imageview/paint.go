package imageview

import (
	"github.com/go-drift/imageview/pkg/errors"
	"github.com/go-drift/imageview/pkg/graphics"
	"github.com/go-drift/imageview/pkg/layout"
)

// Paint draws the surface into ctx.Canvas within ctx.Size.
//
// Paint order is fixed:
//  1. Elevation shadow, when elevated (never clipped)
//  2. Background fill with the effective background color, shaped to the outline
//  3. Clip to the outline path, or to the bounds when clipping is disabled
//  4. Image content fitted by the resize mode, if an image is present
//  5. Border overlay resolved for the direction reported at paint time
//
// The layout direction is queried from the direction provider on every call.
// A panic while painting is reported to the errors handler, and the canvas is
// left with the save depth it had on entry.
func (s *Surface) Paint(ctx *layout.PaintContext) {
	canvas := ctx.Canvas
	saved := false
	defer errors.Recover("imageview.Surface.Paint", func() {
		if saved {
			canvas.Restore()
		}
	})

	bounds := ctx.Bounds()
	if bounds.IsEmpty() {
		return
	}
	dir := s.paintDirection()
	s.resolver.SetDirection(dir)
	outline := s.clip.Outline(bounds, s.units)

	if shadow, ok := graphics.ElevationShadow(layout.ToPixels(s.units, s.elevation)); ok {
		canvas.DrawRRectShadow(outline, shadow)
	}
	if !s.effectiveBackground.IsTransparent() {
		background := graphics.FillPaint(s.effectiveBackground)
		if outline.IsRect() {
			canvas.DrawRect(bounds, background)
		} else {
			canvas.DrawRRect(outline, background)
		}
	}

	canvas.Save()
	saved = true
	if s.clipToOutline {
		canvas.ClipPath(s.clip.ClipPath(bounds, s.units), graphics.ClipOpIntersect, true)
	} else {
		canvas.ClipRect(bounds)
	}
	s.paintImage(canvas, bounds)
	if s.overlay != nil {
		s.overlay.Draw(canvas, bounds, dir, s.units)
	}
	canvas.Restore()
	saved = false
}

func (s *Surface) paintImage(canvas graphics.Canvas, bounds graphics.Rect) {
	if s.image == nil {
		return
	}
	pixels := s.image.Bounds()
	if pixels.Empty() {
		return
	}
	w, h := scaledSize(s.request, s.image)
	intrinsic := graphics.Size{Width: w, Height: h}
	if intrinsic.IsEmpty() {
		return
	}
	// Source rects are computed at the requested size and mapped back onto
	// the decoded pixels.
	sx := float64(pixels.Dx()) / intrinsic.Width
	sy := float64(pixels.Dy()) / intrinsic.Height
	toPixels := func(r graphics.Rect) graphics.Rect {
		return graphics.Rect{Left: r.Left * sx, Top: r.Top * sy, Right: r.Right * sx, Bottom: r.Bottom * sy}
	}

	if s.resizeMode == ResizeModeRepeat {
		full := graphics.RectFromLTWH(0, 0, float64(pixels.Dx()), float64(pixels.Dy()))
		for _, tile := range tileRects(intrinsic, bounds) {
			canvas.DrawImageRect(s.image, full, tile, s.quality)
		}
		return
	}
	src, dst := fitRects(s.resizeMode, intrinsic, bounds)
	if src.IsEmpty() || dst.IsEmpty() {
		return
	}
	canvas.DrawImageRect(s.image, toPixels(src), dst, s.quality)
}
