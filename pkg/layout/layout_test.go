package layout

import (
	"testing"

	"github.com/go-drift/imageview/pkg/graphics"
)

func TestTextDirectionString(t *testing.T) {
	tests := []struct {
		dir  TextDirection
		want string
	}{
		{TextDirectionLTR, "ltr"},
		{TextDirectionRTL, "rtl"},
		{TextDirection(7), "TextDirection(7)"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("TextDirection(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestParseTextDirection(t *testing.T) {
	if d, err := ParseTextDirection("rtl"); err != nil || d != TextDirectionRTL {
		t.Errorf("ParseTextDirection(rtl) = %v, %v", d, err)
	}
	if _, err := ParseTextDirection("up"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestResolveDirection(t *testing.T) {
	if got := ResolveDirection(nil); got != TextDirectionLTR {
		t.Errorf("ResolveDirection(nil) = %v, want ltr", got)
	}
	if got := ResolveDirection(FixedDirection(TextDirectionRTL)); got != TextDirectionRTL {
		t.Errorf("ResolveDirection(rtl) = %v, want rtl", got)
	}
}

func TestDensity(t *testing.T) {
	if got := Density(2.5).ToPixels(4); got != 10 {
		t.Errorf("ToPixels = %v, want 10", got)
	}
	if got := Density(0).ToPixels(4); got != 4 {
		t.Errorf("zero density ToPixels = %v, want 4", got)
	}
	if got := ToPixels(nil, 3); got != 3 {
		t.Errorf("ToPixels(nil) = %v, want 3", got)
	}
}

func TestPaintContextBounds(t *testing.T) {
	ctx := &PaintContext{Size: graphics.Size{Width: 30, Height: 20}}
	if got, want := ctx.Bounds(), graphics.RectFromLTWH(0, 0, 30, 20); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}
