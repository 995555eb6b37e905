package graphics

import (
	"math"
	"testing"
)

func TestRRectNormalizedCollapsesOverlappingCorners(t *testing.T) {
	rect := RectFromLTWH(0, 0, 100, 40)
	rr := RRectFromRectAndCorners(rect, [4]float64{30, 30, 30, 30}).Normalized()

	// The 40px sides can hold two radii of 20 at most.
	want := 20.0
	for name, r := range map[string]Radius{
		"topLeft":     rr.TopLeft,
		"topRight":    rr.TopRight,
		"bottomRight": rr.BottomRight,
		"bottomLeft":  rr.BottomLeft,
	} {
		if math.Abs(r.X-want) > 1e-9 || math.Abs(r.Y-want) > 1e-9 {
			t.Errorf("%s = %+v, want %v", name, r, want)
		}
	}
}

func TestRRectNormalizedKeepsFittingCorners(t *testing.T) {
	rect := RectFromLTWH(0, 0, 100, 100)
	in := RRectFromRectAndCorners(rect, [4]float64{4, 8, 8, 8})
	out := in.Normalized()
	if out != in {
		t.Errorf("Normalized() = %+v, want unchanged %+v", out, in)
	}
}

func TestRRectNormalizedClampsNegative(t *testing.T) {
	rr := RRectFromRectAndCorners(RectFromLTWH(0, 0, 10, 10), [4]float64{-1, 2, 2, 2}).Normalized()
	if rr.TopLeft != (Radius{}) {
		t.Errorf("TopLeft = %+v, want zero", rr.TopLeft)
	}
}

func TestRRectNormalizedHugeRadii(t *testing.T) {
	rect := RectFromLTWH(0, 0, 100, 60)
	for _, radius := range []float64{1e308, math.MaxFloat64, math.Inf(1)} {
		rr := RRectFromRectAndCorners(rect, [4]float64{radius, radius, radius, radius}).Normalized()
		for _, r := range []Radius{rr.TopLeft, rr.TopRight, rr.BottomRight, rr.BottomLeft} {
			if math.Abs(r.X-30) > 1e-9 || math.Abs(r.Y-30) > 1e-9 {
				t.Errorf("radius %v: corner = %+v, want 30", radius, r)
			}
		}
	}

	rr := RRectFromRectAndCorners(rect, [4]float64{math.NaN(), math.Inf(-1), 4, 4}).Normalized()
	if !rr.TopLeft.IsZero() || !rr.TopRight.IsZero() {
		t.Errorf("NaN and -Inf corners = %+v %+v, want zero", rr.TopLeft, rr.TopRight)
	}
}

func TestRRectDeflate(t *testing.T) {
	rr := RRectFromRectAndCorners(RectFromLTWH(0, 0, 100, 100), [4]float64{10, 10, 10, 10})
	inner := rr.Deflate(4, 2, 12, 0)

	if want := (Rect{Left: 4, Top: 2, Right: 88, Bottom: 100}); inner.Rect != want {
		t.Errorf("Rect = %+v, want %+v", inner.Rect, want)
	}
	if want := (Radius{X: 6, Y: 8}); inner.TopLeft != want {
		t.Errorf("TopLeft = %+v, want %+v", inner.TopLeft, want)
	}
	if want := (Radius{X: 0, Y: 10}); inner.BottomRight != want {
		t.Errorf("BottomRight = %+v, want %+v", inner.BottomRight, want)
	}
}

func TestUniformRadius(t *testing.T) {
	rect := RectFromLTWH(0, 0, 10, 10)
	if got := RRectFromRectAndRadius(rect, CircularRadius(3)).UniformRadius(); got != 3 {
		t.Errorf("UniformRadius() = %v, want 3", got)
	}
	if got := RRectFromRectAndCorners(rect, [4]float64{3, 3, 3, 2}).UniformRadius(); got != 0 {
		t.Errorf("UniformRadius() = %v, want 0 for mixed corners", got)
	}
}

func TestColorRGBAndAlpha(t *testing.T) {
	c := Color(0x80FF0000)
	if got := c.RGB(); got != 0xFF0000 {
		t.Errorf("RGB() = %#x, want 0xFF0000", got)
	}
	if got := c.Alpha8(); got != 0x80 {
		t.Errorf("Alpha8() = %d, want 128", got)
	}
	if got := ColorFromRGBAndAlpha(c.RGB(), c.Alpha8()); got != c {
		t.Errorf("ColorFromRGBAndAlpha() = %#x, want %#x", uint32(got), uint32(c))
	}
	if !ColorTransparent.IsTransparent() || ColorWhite.IsTransparent() {
		t.Error("IsTransparent() disagrees with the alpha channel")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", ColorRed, false},
		{"80ff0000", Color(0x80FF0000), false},
		{"#00000000", ColorTransparent, false},
		{"#F00", 0, true},
		{"#GG0000", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
		}
	}
	if got := Color(0x80FF0000).Hex(); got != "#80FF0000" {
		t.Errorf("Hex() = %q, want #80FF0000", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"red", ColorRed, false},
		{" CornflowerBlue ", RGB(0x64, 0x95, 0xED), false},
		{"transparent", ColorTransparent, false},
		{"#4000FF00", Color(0x4000FF00), false},
		{"reddish", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestPaintEffectiveColor(t *testing.T) {
	p := FillPaint(ColorRed)
	p.Alpha = 0.5
	if got := p.EffectiveColor().Alpha8(); got != 128 {
		t.Errorf("alpha = %d, want 128", got)
	}
	p.Alpha = -1
	if got := p.EffectiveColor(); got != ColorRed {
		t.Errorf("EffectiveColor() = %#x, want opaque red", uint32(got))
	}
}

func TestElevationShadow(t *testing.T) {
	if _, ok := ElevationShadow(0); ok {
		t.Error("zero elevation should cast no shadow")
	}
	s, ok := ElevationShadow(8)
	if !ok {
		t.Fatal("expected a shadow")
	}
	if s.Offset.Y != 4 || s.BlurRadius != 8 {
		t.Errorf("shadow = %+v, want offset 4 blur 8", s)
	}
}
