package graphics

import (
	"image"
	"image/color"
	"testing"
)

func alphaAt(img *image.RGBA, x, y int) uint8 {
	return img.RGBAAt(x, y).A
}

func TestRasterCanvasFillRect(t *testing.T) {
	c := NewRasterCanvasSize(20, 20)
	c.DrawRect(RectFromLTWH(5, 5, 10, 10), FillPaint(ColorRed))

	img := c.Image()
	if got := img.RGBAAt(10, 10); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("inside = %+v, want opaque red", got)
	}
	if got := alphaAt(img, 2, 2); got != 0 {
		t.Errorf("outside alpha = %d, want 0", got)
	}
}

func TestRasterCanvasRoundedClipHidesCorner(t *testing.T) {
	c := NewRasterCanvasSize(40, 40)
	rect := RectFromLTWH(0, 0, 40, 40)
	c.Save()
	c.ClipRRect(RRectFromRectAndCorners(rect, [4]float64{16, 0, 0, 0}))
	c.DrawRect(rect, FillPaint(ColorBlue))
	c.Restore()

	img := c.Image()
	if got := alphaAt(img, 0, 0); got != 0 {
		t.Errorf("clipped top-left alpha = %d, want 0", got)
	}
	if got := alphaAt(img, 39, 0); got != 0xFF {
		t.Errorf("square top-right alpha = %d, want 255", got)
	}
	if got := alphaAt(img, 20, 20); got != 0xFF {
		t.Errorf("center alpha = %d, want 255", got)
	}
}

func TestRasterCanvasRestorePopsClip(t *testing.T) {
	c := NewRasterCanvasSize(10, 10)
	c.Save()
	c.ClipRect(RectFromLTWH(0, 0, 5, 5))
	c.Restore()
	c.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(ColorGreen))
	if got := alphaAt(c.Image(), 8, 8); got != 0xFF {
		t.Errorf("alpha after restore = %d, want 255", got)
	}
}

func TestRasterCanvasEvenOddRing(t *testing.T) {
	c := NewRasterCanvasSize(30, 30)
	p := NewPathWithFillRule(FillRuleEvenOdd)
	p.AddRect(RectFromLTWH(0, 0, 30, 30))
	p.AddRect(RectFromLTWH(10, 10, 10, 10))
	c.DrawPath(p, FillPaint(ColorBlack))

	img := c.Image()
	if got := alphaAt(img, 5, 5); got != 0xFF {
		t.Errorf("ring alpha = %d, want 255", got)
	}
	if got := alphaAt(img, 15, 15); got != 0 {
		t.Errorf("hole alpha = %d, want 0", got)
	}
}

func TestRasterCanvasStrokeRect(t *testing.T) {
	c := NewRasterCanvasSize(20, 20)
	paint := FillPaint(ColorBlack)
	paint.Style = PaintStyleStroke
	paint.StrokeWidth = 4
	c.DrawRect(RectFromLTWH(2, 2, 16, 16), paint)

	img := c.Image()
	if got := alphaAt(img, 1, 10); got != 0xFF {
		t.Errorf("stroke alpha = %d, want 255", got)
	}
	if got := alphaAt(img, 10, 10); got != 0 {
		t.Errorf("interior alpha = %d, want 0", got)
	}
}

func TestRasterCanvasTranslate(t *testing.T) {
	c := NewRasterCanvasSize(20, 20)
	c.Translate(10, 10)
	c.DrawRect(RectFromLTWH(0, 0, 5, 5), FillPaint(ColorRed))
	img := c.Image()
	if got := alphaAt(img, 12, 12); got != 0xFF {
		t.Errorf("translated alpha = %d, want 255", got)
	}
	if got := alphaAt(img, 2, 2); got != 0 {
		t.Errorf("origin alpha = %d, want 0", got)
	}
}

func TestRasterCanvasDrawImageRectScales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, color.RGBA{G: 0xFF, A: 0xFF})
		}
	}
	c := NewRasterCanvasSize(10, 10)
	c.DrawImageRect(src, Rect{}, RectFromLTWH(0, 0, 10, 10), FilterQualityNone)
	if got := c.Image().RGBAAt(9, 9); got != (color.RGBA{G: 0xFF, A: 0xFF}) {
		t.Errorf("scaled pixel = %+v, want opaque green", got)
	}
}

func TestRasterCanvasClearRespectsClip(t *testing.T) {
	c := NewRasterCanvasSize(10, 10)
	c.ClipRect(RectFromLTWH(0, 0, 5, 10))
	c.Clear(ColorWhite)
	img := c.Image()
	if got := alphaAt(img, 2, 5); got != 0xFF {
		t.Errorf("cleared alpha = %d, want 255", got)
	}
	if got := alphaAt(img, 8, 5); got != 0 {
		t.Errorf("outside clip alpha = %d, want 0", got)
	}
}
